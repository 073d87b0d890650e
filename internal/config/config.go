package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Relational store for the whole domain model
	Database DatabaseConfig `json:"database"`

	// GridFS picture storage
	MongoDB MongoDBConfig `json:"mongodb"`

	Auth    AuthConfig    `json:"auth"`
	Upload  UploadConfig  `json:"upload"`
	Search  SearchConfig  `json:"search"`
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	GRPCPort     string `json:"grpc_port"`
	MediaPort    string `json:"media_port"`
	MediaBaseURL string `json:"media_base_url"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string `json:"driver"` // mysql or postgres
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	SSLMode      string `json:"ssl_mode"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
}

type AuthConfig struct {
	JWTSecret     string `json:"-"`
	TokenTTLHours int    `json:"token_ttl_hours"`
	Issuer        string `json:"issuer"`
}

// UploadConfig bounds picture uploads
type UploadConfig struct {
	MaxBytes          int64    `json:"max_bytes"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

type SearchConfig struct {
	DefaultLimit int `json:"default_limit"`
	MaxLimit     int `json:"max_limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", "8000")
	v.SetDefault("GRPC_PORT", "9000")
	v.SetDefault("MEDIA_SERVER_PORT", "8080")
	v.SetDefault("MEDIA_BASE_URL", "")
	v.SetDefault("READ_TIMEOUT", 15)
	v.SetDefault("WRITE_TIMEOUT", 15)
	v.SetDefault("ENVIRONMENT", "development")

	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "")
	v.SetDefault("DB_USER", "pinboard")
	v.SetDefault("DB_PASSWORD", "pinboard")
	v.SetDefault("DB_NAME", "pinboard")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("MONGO_HOST", "localhost")
	v.SetDefault("MONGO_PORT", "27017")
	v.SetDefault("MONGO_USERNAME", "")
	v.SetDefault("MONGO_PASSWORD", "")
	v.SetDefault("MONGO_DATABASE", "pinboard")
	v.SetDefault("MONGO_BUCKET", "pictures")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL_HOURS", 24)
	v.SetDefault("JWT_ISSUER", "pinboard")

	v.SetDefault("UPLOAD_MAX_BYTES", 16<<20)
	v.SetDefault("UPLOAD_ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif")

	v.SetDefault("SEARCH_DEFAULT_LIMIT", 20)
	v.SetDefault("SEARCH_MAX_LIMIT", 100)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
}

// LoadConfig reads .env (if present) into the process environment and
// resolves every setting from the environment with defaults.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetString("HTTP_PORT"),
			GRPCPort:     v.GetString("GRPC_PORT"),
			MediaPort:    v.GetString("MEDIA_SERVER_PORT"),
			MediaBaseURL: v.GetString("MEDIA_BASE_URL"),
			ReadTimeout:  v.GetInt("READ_TIMEOUT"),
			WriteTimeout: v.GetInt("WRITE_TIMEOUT"),
			Environment:  v.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			Username:     v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			DatabaseName: v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		MongoDB: MongoDBConfig{
			Host:     v.GetString("MONGO_HOST"),
			Port:     v.GetString("MONGO_PORT"),
			Username: v.GetString("MONGO_USERNAME"),
			Password: v.GetString("MONGO_PASSWORD"),
			Database: v.GetString("MONGO_DATABASE"),
			Bucket:   v.GetString("MONGO_BUCKET"),
		},
		Auth: AuthConfig{
			JWTSecret:     v.GetString("JWT_SECRET"),
			TokenTTLHours: v.GetInt("JWT_TTL_HOURS"),
			Issuer:        v.GetString("JWT_ISSUER"),
		},
		Upload: UploadConfig{
			MaxBytes:          v.GetInt64("UPLOAD_MAX_BYTES"),
			AllowedExtensions: splitList(v.GetString("UPLOAD_ALLOWED_EXTENSIONS")),
		},
		Search: SearchConfig{
			DefaultLimit: v.GetInt("SEARCH_DEFAULT_LIMIT"),
			MaxLimit:     v.GetInt("SEARCH_MAX_LIMIT"),
		},
		Logging: LoggingConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Format:     v.GetString("LOG_FORMAT"),
			OutputPath: v.GetString("LOG_OUTPUT"),
		},
	}

	if cfg.Server.MediaBaseURL == "" {
		cfg.Server.MediaBaseURL = fmt.Sprintf("http://localhost:%s/media/", cfg.Server.MediaPort)
	}
	if cfg.Auth.JWTSecret == "" && !cfg.IsProduction() {
		cfg.Auth.JWTSecret = "pinboard-dev-secret"
	}

	return cfg
}

func (cfg *Config) IsProduction() bool {
	return cfg.Server.Environment == "production"
}

func (cfg *Config) Validate() error {
	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		return errors.New("JWT_TTL_HOURS must be positive")
	}
	if cfg.Search.DefaultLimit <= 0 || cfg.Search.MaxLimit < cfg.Search.DefaultLimit {
		return fmt.Errorf("invalid search limits: default %d, max %d", cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	}
	if cfg.Upload.MaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}

	if cfg.Database.Driver == DriverPostgres {
		if cfg.Database.Port == "" {
			cfg.Database.Port = "5432"
		}
		sslMode := cfg.Database.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Database.Host,
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.DatabaseName,
			cfg.Database.Port,
			sslMode,
		)
	}

	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, strings.TrimPrefix(p, "."))
		}
	}
	return out
}
