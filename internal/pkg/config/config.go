package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, bucket, etc.), secrets
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	S3        S3Config
	SMTP      SMTPConfig
	Redis     RedisConfig
	Booking   BookingConfig
	Notify    NotifyConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5433"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`

	// Upper bound of concurrent transactional sessions. Callers beyond it wait up to AcquireTimeout.
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"0"`
	AcquireTimeout  time.Duration `envconfig:"DB_ACQUIRE_TIMEOUT" default:"5s"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type S3Config struct {
	Region          string `envconfig:"AWS_S3_REGION_NAME" required:"true"`
	Bucket          string `envconfig:"AWS_STORAGE_BUCKET_NAME" required:"true"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	// Optional S3-compatible endpoint (MinIO, LocalStack). Empty means AWS.
	Endpoint     string `envconfig:"AWS_S3_ENDPOINT"`
	UsePathStyle bool   `envconfig:"AWS_S3_USE_PATH_STYLE" default:"false"`
	// Overrides the https://{bucket}.s3.{region}.amazonaws.com prefix of returned references.
	PublicBaseURL string `envconfig:"AWS_S3_PUBLIC_BASE_URL"`
}

type SMTPConfig struct {
	// Empty host selects the log-only sender.
	Host     string        `envconfig:"SMTP_SERVER"`
	Port     int           `envconfig:"SMTP_PORT" default:"587"`
	Username string        `envconfig:"SMTP_EMAIL"`
	Password string        `envconfig:"SMTP_PASS"`
	From     string        `envconfig:"SMTP_FROM"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

// FromAddress defaults to the login, matching how the mailbox is provisioned.
func (c SMTPConfig) FromAddress() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

type RedisConfig struct {
	// Empty address keeps dead letters in the log only.
	Address  string `envconfig:"REDIS_ADDRESS"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"5"`
}

type BookingConfig struct {
	WorkflowTimeout        time.Duration `envconfig:"BOOKING_WORKFLOW_TIMEOUT" default:"60s"`
	TimeZone               string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Kolkata"`
	PhotoUploadConcurrency int           `envconfig:"BOOKING_PHOTO_UPLOAD_CONCURRENCY" default:"4"`
	DocumentUploadPolicy   string        `envconfig:"BOOKING_DOCUMENT_UPLOAD_POLICY" default:"absorb"`
	PhotoUploadPolicy      string        `envconfig:"BOOKING_PHOTO_UPLOAD_POLICY" default:"fatal"`
	DedupeCustomerByPhone  bool          `envconfig:"BOOKING_DEDUPE_CUSTOMER_BY_PHONE" default:"false"`
	CleanupOrphanedUploads bool          `envconfig:"BOOKING_CLEANUP_ORPHANED_UPLOADS" default:"true"`
	NotificationTimeZone   string        `envconfig:"BOOKING_NOTIFICATION_TIMEZONE" default:"Asia/Kolkata"`
	MaxPhotos              int           `envconfig:"BOOKING_MAX_PHOTOS" default:"10"`
	MaxUploadBytes         int64         `envconfig:"BOOKING_MAX_UPLOAD_BYTES" default:"33554432"` // 32MiB
}

type NotifyConfig struct {
	Workers        int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize      int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	MaxRetries     int           `envconfig:"NOTIFY_MAX_RETRIES" default:"3"`
	InitialDelay   time.Duration `envconfig:"NOTIFY_INITIAL_DELAY" default:"2s"`
	MaxDelay       time.Duration `envconfig:"NOTIFY_MAX_DELAY" default:"1m"`
	AttemptTimeout time.Duration `envconfig:"NOTIFY_ATTEMPT_TIMEOUT" default:"20s"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"2"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			TimeZone:       "Asia/Kolkata",
			MaxConns:       4,
			AcquireTimeout: 2 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		S3: S3Config{
			Region: "ap-south-1",
			Bucket: "storezee-test",
		},
		Booking: BookingConfig{
			WorkflowTimeout:        10 * time.Second,
			TimeZone:               "Asia/Kolkata",
			PhotoUploadConcurrency: 2,
			DocumentUploadPolicy:   "absorb",
			PhotoUploadPolicy:      "fatal",
			CleanupOrphanedUploads: true,
			NotificationTimeZone:   "Asia/Kolkata",
			MaxPhotos:              10,
			MaxUploadBytes:         1 << 20,
		},
		Notify: NotifyConfig{
			Workers:        1,
			QueueSize:      8,
			MaxRetries:     1,
			InitialDelay:   time.Millisecond,
			MaxDelay:       10 * time.Millisecond,
			AttemptTimeout: time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:   100,
			Burst: 100,
		},
	}
}
