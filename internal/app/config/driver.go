package config

type (
	DriverConfig struct {
		MongoDB  MongoDB  `mapstructure:"mongodb"`
		Redis    Redis    `mapstructure:"redis"`
		Logger   Logger   `mapstructure:"logger"`
		RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
		Minio    Minio    `mapstructure:"minio"`
		SMTP     SMTP     `mapstructure:"smtp"`
	}
	MongoDB struct {
		Port       string `mapstructure:"port"`
		Host       string `mapstructure:"host"`
		Username   string `mapstructure:"username"`
		Password   string `mapstructure:"password"`
		DbName     string `mapstructure:"db_name"`
		ReplicaSet string `mapstructure:"replica_set"`
	}
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}
	Logger struct {
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_file_name"`
		OutputErrorFileName string `mapstructure:"output_error_file_name"`
	}
	RabbitMQ struct {
		Port     string `mapstructure:"port"`
		Host     string `mapstructure:"host"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	}
	Minio struct {
		Port       string `mapstructure:"port"`
		Host       string `mapstructure:"host"`
		Username   string `mapstructure:"username"`
		Password   string `mapstructure:"password"`
		BucketName string `mapstructure:"bucket_name"`
		UseSSL     bool   `mapstructure:"use_ssl"`
	}
	SMTP struct {
		Host        string `mapstructure:"host"`
		Port        int    `mapstructure:"port"`
		Username    string `mapstructure:"username"`
		Password    string `mapstructure:"password"`
		EmailSender string `mapstructure:"email_sender"`
	}
)
