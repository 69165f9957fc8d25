package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		NotifyEmail  string `yaml:"notify_email"` // contact-form notifications go here
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`       // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`  // for local storage
		BaseURL    string `yaml:"base_url"`   // public URL base
		Bucket     string `yaml:"bucket"`     // for S3/R2
		Region     string `yaml:"region"`     // for S3
		AccessKey  string `yaml:"access_key"` // for S3/R2
		SecretKey  string `yaml:"secret_key"` // for S3/R2
		Endpoint   string `yaml:"endpoint"`   // for R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // per-file limit in bytes
		MaxFiles     int      `yaml:"max_files"`     // per-batch file count limit
		AllowedTypes []string `yaml:"allowed_types"` // MIME allow-list
		SignTTL      int      `yaml:"sign_ttl"`      // presigned upload credential lifetime, seconds
		ImageQuality int      `yaml:"image_quality"` // JPEG quality for thumbnails (1-100)
	} `yaml:"upload"`

	Cache struct {
		Secret string `yaml:"secret"` // shared secret for /revalidate and /cache/clear
		TTL    int    `yaml:"ttl"`    // public page cache TTL, seconds
	} `yaml:"cache"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables
// when DATABASE_URL is set (the mode the test suite runs in).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@atlasweb.test"
	cfg.Email.NotifyEmail = "owner@atlasweb.test"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"

	cfg.Cache.Secret = os.Getenv("CACHE_SECRET")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-only-secret"
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if cfg.Upload.MaxFiles <= 0 {
		cfg.Upload.MaxFiles = 10
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
			"application/pdf", "text/plain",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}
	}
	if cfg.Upload.SignTTL <= 0 {
		cfg.Upload.SignTTL = 300 // 5 minutes
	}
	if cfg.Upload.ImageQuality <= 0 || cfg.Upload.ImageQuality > 100 {
		cfg.Upload.ImageQuality = 85
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
