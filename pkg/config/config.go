package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	DBMaxConns     int
	LogLevel       string
	LogFormat      string
	MaxUploadBytes int64
	// JWT verification is enabled when JWTSecret is set.
	JWTSecret string
	JWTIssuer string
	MinIO     MinIOConfig
	RabbitMQ  RabbitMQConfig
}

// MinIOConfig настраивает архив исходных файлов. Пустой Endpoint отключает архив.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// RabbitMQConfig настраивает публикацию событий. Пустой URL отключает события.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

func (c RabbitMQConfig) Enabled() bool { return c.URL != "" }

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBMaxConns:     getEnvInt("DB_MAX_CONNS", 10),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      os.Getenv("JWT_ISSUER"),
		MinIO: MinIOConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnv("MINIO_BUCKET", "resumes"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      os.Getenv("RABBITMQ_URL"),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "jobseeker_events"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
