package config

import (
	"errors"
	"time"
)

type InternalConfig struct {
	App            App          `mapstructure:"app"`
	JWT            AppJWT       `mapstructure:"jwt"`
	Razorpay       AppRazorpay  `mapstructure:"razorpay"`
	AIModelService AppAIModel   `mapstructure:"ai_model_service"`
	RabbitMQ       AppRabbitMQ  `mapstructure:"rabbitmq"`
	Minio          AppMinio     `mapstructure:"minio"`
	Mailer         AppMailer    `mapstructure:"smtp"`
	Scheduler      AppScheduler `mapstructure:"scheduler"`
	Lock           AppLock      `mapstructure:"lock"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins         string `mapstructure:"cors_allowed_origins"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	AuthRateLimitPerMinute     int    `mapstructure:"auth_rate_limit_per_minute"`
	AuthRateLimitBurst         int    `mapstructure:"auth_rate_limit_burst"`
	AuthBlockDurationInMinutes int    `mapstructure:"auth_block_duration_in_minutes"`
	PredictQuotaPerMinute      int    `mapstructure:"predict_quota_per_minute"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppRazorpay struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
}

type AppAIModel struct {
	URL                      string `mapstructure:"url"`
	TimeoutInSeconds         int    `mapstructure:"timeout_in_seconds"`
	SymptomCacheTTLInMinutes int    `mapstructure:"symptom_cache_ttl_in_minutes"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}

type AppMinio struct {
	BucketName                      string `mapstructure:"bucket_name"`
	PreSignedUrlExpiryTimeInMinutes int    `mapstructure:"pre_signed_url_expiry_time_in_minutes"`
}

type AppMailer struct {
	EmailSender string `mapstructure:"email_sender"`
}

type AppScheduler struct {
	Enabled                     bool   `mapstructure:"enabled"`
	SymptomRefreshCronSpec      string `mapstructure:"symptom_refresh_cron_spec"`
	AppointmentReminderCronSpec string `mapstructure:"appointment_reminder_cron_spec"`
	LeaderLockTTLInSeconds      int    `mapstructure:"leader_lock_ttl_in_seconds"`
}

type AppLock struct {
	RoleTransitionTTLInSeconds int `mapstructure:"role_transition_ttl_in_seconds"`
	AppointmentTTLInSeconds    int `mapstructure:"appointment_ttl_in_seconds"`
}

func (c *InternalConfig) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.ExpTimeInHour <= 0 {
		return errors.New("JWT_EXP_TIME_IN_HOUR must be positive")
	}
	return nil
}

func (c *InternalConfig) RequestTimeout() time.Duration {
	return time.Duration(c.App.RequestTimeoutInSeconds) * time.Second
}

func (c *InternalConfig) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpTimeInHour) * time.Hour
}
