package utils

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppURL   string `yaml:"APP_URL"`
	AppPort  string `yaml:"APP_PORT"`
	LogLevel string `yaml:"LOG_LEVEL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret       string `yaml:"JWT_SECRET"`
	AccessTokenTTL  string `yaml:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL string `yaml:"REFRESH_TOKEN_TTL"`

	// Mailing configuration
	MailEnabled      bool   `yaml:"MAIL_ENABLED"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`

	// Event bus
	KafkaBrokers string `yaml:"KAFKA_BROKERS"`

	// Expiry scanner
	ExpiryScanEnabled  bool   `yaml:"EXPIRY_SCAN_ENABLED"`
	ExpiryScanInterval string `yaml:"EXPIRY_SCAN_INTERVAL"`
}

var (
	config Config
	mu     sync.RWMutex
)

// LoadConfig reads .env into the environment, then config.yaml. Either
// file may be missing. Environment variables win over YAML values.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading .env file: %s\n", err)
	}
	if err := LoadConfigFile("config.yaml"); err != nil && !os.IsNotExist(err) {
		log.Printf("Error reading YAML file: %s\n", err)
	}
}

func LoadConfigFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var c Config
	if err := yaml.Unmarshal(file, &c); err != nil {
		return err
	}

	mu.Lock()
	config = c
	mu.Unlock()
	return nil
}

func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	mu.RLock()
	defer mu.RUnlock()
	switch key {
	case "APP_URL":
		return config.AppURL
	case "APP_PORT":
		return config.AppPort
	case "LOG_LEVEL":
		return config.LogLevel
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "ACCESS_TOKEN_TTL":
		return config.AccessTokenTTL
	case "REFRESH_TOKEN_TTL":
		return config.RefreshTokenTTL
	case "MAIL_ENABLED":
		return strconv.FormatBool(config.MailEnabled)
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "KAFKA_BROKERS":
		return config.KafkaBrokers
	case "EXPIRY_SCAN_ENABLED":
		return strconv.FormatBool(config.ExpiryScanEnabled)
	case "EXPIRY_SCAN_INTERVAL":
		return config.ExpiryScanInterval
	default:
		return ""
	}
}

// GetConfigBool reads a boolean key. Unparsable values are false.
func GetConfigBool(key string) bool {
	b, _ := strconv.ParseBool(GetConfig(key))
	return b
}
