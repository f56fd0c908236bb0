package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env (when present) and the process environment into both config
// structs. Keys are nested with "." and map to env vars with "_", so app.port
// is read from APP_PORT.
func Load() (*DriverConfig, *InternalConfig, error) {
	godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	driverConfig := &DriverConfig{}
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal driver config: %w", err)
	}

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal internal config: %w", err)
	}

	if err := internalConfig.Validate(); err != nil {
		return nil, nil, err
	}
	return driverConfig, internalConfig, nil
}

func setDefaults(v *viper.Viper) {
	// drivers
	v.SetDefault("mongodb.host", "localhost")
	v.SetDefault("mongodb.port", "27017")
	v.SetDefault("mongodb.username", "")
	v.SetDefault("mongodb.password", "")
	v.SetDefault("mongodb.db_name", "hospital")
	v.SetDefault("mongodb.replica_set", "rs0")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.output_file_name", "logger.log")
	v.SetDefault("logger.output_error_file_name", "logger_error.log")

	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", "5672")
	v.SetDefault("rabbitmq.username", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.mailer_queue", "hospital.mailer")

	v.SetDefault("minio.host", "localhost")
	v.SetDefault("minio.port", "9000")
	v.SetDefault("minio.username", "minioadmin")
	v.SetDefault("minio.password", "minioadmin")
	v.SetDefault("minio.bucket_name", "hospital")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.pre_signed_url_expiry_time_in_minutes", 15)

	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 2525)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.email_sender", "no-reply@hospital.local")

	// app
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "v1.0")
	v.SetDefault("app.endpoint_prefix", "/api")
	v.SetDefault("app.cors_allowed_origins", "*")
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)
	v.SetDefault("app.request_timeout_in_seconds", 10)
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.max_time_requests_per_seconds", 60)
	v.SetDefault("app.request_body_limit_in_megabyte", 2)
	v.SetDefault("app.auth_rate_limit_per_minute", 20)
	v.SetDefault("app.auth_rate_limit_burst", 5)
	v.SetDefault("app.auth_block_duration_in_minutes", 5)
	v.SetDefault("app.predict_quota_per_minute", 30)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.exp_time_in_hour", 6)

	v.SetDefault("razorpay.key_id", "")
	v.SetDefault("razorpay.key_secret", "")

	v.SetDefault("ai_model_service.url", "http://localhost:5000")
	v.SetDefault("ai_model_service.timeout_in_seconds", 8)
	v.SetDefault("ai_model_service.symptom_cache_ttl_in_minutes", 60)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.symptom_refresh_cron_spec", "@hourly")
	v.SetDefault("scheduler.appointment_reminder_cron_spec", "0 18 * * *")
	v.SetDefault("scheduler.leader_lock_ttl_in_seconds", 60)

	v.SetDefault("lock.role_transition_ttl_in_seconds", 15)
	v.SetDefault("lock.appointment_ttl_in_seconds", 10)
}
