package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"restaurant-pos/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Notify   NotifyConfig
	Backup   BackupConfig
	Jobs     JobsConfig
	Tracker  TrackerConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Host        string
	Port        string
	FrontendURL string
	LogDir      string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

type RedisConfig struct {
	Addr           string
	Password       string
	IdempotencyTTL time.Duration
}

type NotifyConfig struct {
	// Channel is one of "sms", "kafka", "email" or "log".
	Channel       string
	SMSGatewayURL string
	SMSAPIKey     string
	KafkaBrokers  []string
	KafkaTopic    string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	FromEmail     string
}

type BackupConfig struct {
	Dir        string
	MaxBackups int
	Recipient  string
}

type JobsConfig struct {
	Tick                     time.Duration
	OfferSweepInterval       time.Duration
	BackupInterval           time.Duration
	ProjectionRepairInterval time.Duration
}

type TrackerConfig struct {
	RetirementPolicy string
}

type AdminConfig struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file loaded, using process environment")
	}

	return &Config{
		App: AppConfig{
			Host:        env("APP_HOST", "0.0.0.0"),
			Port:        env("APP_PORT", "5000"),
			FrontendURL: env("FRONTEND_URL", "*"),
			LogDir:      env("LOG_DIR", "log/app"),
		},
		Database: DatabaseConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Database: env("DB_DATABASE", "restaurant_pos"),
			Username: env("DB_USERNAME", "postgres"),
			Password: env("DB_PASSWORD", ""),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:   env("JWT_SECRET", ""),
			TokenExpiry: time.Duration(envInt("JWT_EXPIRY_HOURS", 6)) * time.Hour,
		},
		Redis: RedisConfig{
			Addr:           env("REDIS_ADDR", ""),
			Password:       env("REDIS_PASSWORD", ""),
			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Notify: NotifyConfig{
			Channel:       env("NOTIFY_CHANNEL", "log"),
			SMSGatewayURL: env("SMS_GATEWAY_URL", ""),
			SMSAPIKey:     env("SMS_API_KEY", ""),
			KafkaBrokers:  envList("KAFKA_BROKERS"),
			KafkaTopic:    env("NOTIFY_TOPIC", "pos.notifications"),
			SMTPHost:      env("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:      env("SMTP_PORT", "587"),
			SMTPUser:      env("SMTP_USER", ""),
			SMTPPassword:  env("SMTP_PASSWORD", ""),
			FromEmail:     env("FROM_EMAIL", ""),
		},
		Backup: BackupConfig{
			Dir:        env("BACKUP_DIR", "static/uploads"),
			MaxBackups: envInt("MAX_BACKUPS", 5),
			Recipient:  env("BACKUP_RECIPIENT", ""),
		},
		Jobs: JobsConfig{
			Tick:                     envDuration("SCHEDULER_TICK", time.Minute),
			OfferSweepInterval:       envDuration("OFFER_SWEEP_INTERVAL", time.Minute),
			BackupInterval:           envDuration("BACKUP_INTERVAL", 6*time.Hour),
			ProjectionRepairInterval: envDuration("PROJECTION_REPAIR_INTERVAL", 5*time.Minute),
		},
		Tracker: TrackerConfig{
			RetirementPolicy: env("ITEM_RETIREMENT_POLICY", "remove_item"),
		},
		Admin: AdminConfig{
			Name:     env("ADMIN_NAME", "admin"),
			Email:    env("ADMIN_EMAIL", ""),
			Phone:    env("ADMIN_PHONE", "+10000000000"),
			Password: env("ADMIN_PASSWORD", ""),
		},
	}
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return "host=" + d.Host + " port=" + d.Port + " user=" + d.Username +
		" password=" + d.Password + " dbname=" + d.Database + " sslmode=" + d.SSLMode
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warning("Invalid integer for " + k + ", using default")
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warning("Invalid duration for " + k + ", using default")
		return def
	}
	return d
}

func envList(k string) []string {
	v := os.Getenv(k)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
