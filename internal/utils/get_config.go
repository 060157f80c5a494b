package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Gemini API configuration
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL string `yaml:"GEMINI_BASE_URL"`
	GeminiTimeout string `yaml:"GEMINI_TIMEOUT"`

	// Receipt scanning
	ScanTimeout string `yaml:"SCAN_TIMEOUT"`
	OCRLanguage string `yaml:"OCR_LANGUAGE"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:          "3000",
		CORSAllowOrigins: "*",
		DBDriver:         "postgres",
		DBPort:           "5432",
		DBPath:           "grocery.db",
		GeminiModel:      "gemini-2.0-flash",
		GeminiBaseURL:    "https://generativelanguage.googleapis.com/v1beta",
		GeminiTimeout:    "60s",
		ScanTimeout:      "2m",
		OCRLanguage:      "eng",
		LogLevel:         "info",
		LogFormat:        "json",
	}
}

// LoadConfigFrom reads the YAML file at path, then .env, then the process
// environment. Later sources win. Missing files are not an error.
func LoadConfigFrom(path string) {
	config = defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading YAML file: %s\n", err)
		}
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s\n", err)
	}

	for _, key := range configKeys {
		if v, ok := os.LookupEnv(key); ok {
			SetConfig(key, v)
		}
	}
}

var configKeys = []string{
	"APP_PORT", "CORS_ALLOW_ORIGINS",
	"DB_DRIVER", "DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PORT", "DB_HOST", "DB_PATH",
	"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GEMINI_TIMEOUT",
	"SCAN_TIMEOUT", "OCR_LANGUAGE",
	"AWS_S3_BUCKET", "AWS_S3_REGION", "AWS_ACCESS_KEY", "AWS_SECRET_KEY",
	"LOG_LEVEL", "LOG_FORMAT",
}

func field(key string) *string {
	switch key {
	case "APP_PORT":
		return &config.AppPort
	case "CORS_ALLOW_ORIGINS":
		return &config.CORSAllowOrigins
	case "DB_DRIVER":
		return &config.DBDriver
	case "DB_USER":
		return &config.DBUser
	case "DB_NAME":
		return &config.DBName
	case "DB_PASSWORD":
		return &config.DBPassword
	case "DB_PORT":
		return &config.DBPort
	case "DB_HOST":
		return &config.DBHost
	case "DB_PATH":
		return &config.DBPath
	case "GEMINI_API_KEY":
		return &config.GeminiAPIKey
	case "GEMINI_MODEL":
		return &config.GeminiModel
	case "GEMINI_BASE_URL":
		return &config.GeminiBaseURL
	case "GEMINI_TIMEOUT":
		return &config.GeminiTimeout
	case "SCAN_TIMEOUT":
		return &config.ScanTimeout
	case "OCR_LANGUAGE":
		return &config.OCRLanguage
	case "AWS_S3_BUCKET":
		return &config.AWSS3Bucket
	case "AWS_S3_REGION":
		return &config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return &config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return &config.AWSSecretKey
	case "LOG_LEVEL":
		return &config.LogLevel
	case "LOG_FORMAT":
		return &config.LogFormat
	default:
		return nil
	}
}

func GetConfig(key string) string {
	if f := field(key); f != nil {
		return *f
	}
	return ""
}

// SetConfig overrides a single key. Unknown keys are ignored.
func SetConfig(key, value string) {
	if f := field(key); f != nil {
		*f = value
	}
}

// GetDuration parses key as a time.Duration. A bare integer is read as
// seconds. Invalid or empty values fall back to def.
func GetDuration(key string, def time.Duration) time.Duration {
	raw := GetConfig(key)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("invalid duration for %s: %q, using %s\n", key, raw, def)
	return def
}
