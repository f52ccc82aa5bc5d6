// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Upload      UploadConfig
	AWS         AWSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	// Driver selects the storage backend at startup: "postgres" or
	// "sqlite". The same capability set is exposed either way.
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL int // in hours
}

type UploadConfig struct {
	Dir         string
	MaxSizeMB   int64
	UseS3       bool
	S3KeyPrefix string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "postgres"),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "compliance_reporting"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:   getEnv("DB_SQLITE_PATH", "compliance.db"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvAsInt("JWT_ACCESS_TTL", 24), // 24 hours
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_DIR", "./uploads"),
			MaxSizeMB:   int64(getEnvAsInt("UPLOAD_MAX_SIZE_MB", 50)),
			UseS3:       getEnvAsBool("UPLOAD_USE_S3", false),
			S3KeyPrefix: getEnv("UPLOAD_S3_PREFIX", "compliance-uploads"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Database.Driver == "postgres" && c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Upload.UseS3 && (c.AWS.S3Bucket == "" || c.AWS.AccessKeyID == "") {
		return fmt.Errorf("S3 uploads require AWS_S3_BUCKET and AWS credentials")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
