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
		DSN  string `yaml:"url"`
		Name string `yaml:"name"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		NotifyTo     string `yaml:"notify_to"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Storage struct {
		BasePath string `yaml:"base_path"` // корень для файлов на диске
		BaseURL  string `yaml:"base_url"`  // публичный префикс URL
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`           // максимальный размер файла в байтах
		AllowedExtensions []string `yaml:"allowed_extensions"` // без точки, в нижнем регистре
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию из config.yaml (если файл есть)
// и затем накладывает переменные окружения: PORT, DATABASE_URL,
// DATABASE_NAME. Приложение стартует и без файла, и без БД.
func LoadConfig() {
	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
		applyDefaults(cfg)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Fatalf("Invalid PORT value %q: %v", port, err)
		}
		cfg.Server.Port = p
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		cfg.Database.Name = name
	}

	AppConfig = cfg
}

func defaults() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"

	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/uploads"

	cfg.Upload.MaxSize = 200 * 1024 * 1024 // 200MB
	cfg.Upload.AllowedExtensions = []string{"mp4", "mov", "webm", "mkv", "avi"}

	cfg.Email.SMTPPort = 587

	return &cfg
}

// applyDefaults добивает нулевые значения после чтения yaml,
// чтобы неполный файл конфигурации не ломал приложение.
func applyDefaults(cfg *Config) {
	d := defaults()

	if cfg.Server.Host == "" {
		cfg.Server.Host = d.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = d.Server.Port
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = d.Server.Env
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = d.Storage.BasePath
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = d.Storage.BaseURL
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = d.Upload.MaxSize
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = d.Upload.AllowedExtensions
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = d.Email.SMTPPort
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
