package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port    string `yaml:"PORT"`
	NodeEnv string `yaml:"NODE_ENV"`

	// Document store configuration
	DBUser string `yaml:"DB_USER"`
	DBPass string `yaml:"DB_PASS"`
	DBURI  string `yaml:"DB_URI"`

	// Token signing
	AccessTokenSecret string `yaml:"ACCESS_TOKEN_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads the optional config.yaml. Environment variables take
// precedence over file values, so a file-less deployment configured
// purely through the environment works as well.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading YAML file: %s\n", err)
		}
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

func GetConfig(key string) string {
	if env := os.Getenv(key); env != "" {
		return env
	}

	switch key {
	case "PORT":
		return config.Port
	case "NODE_ENV":
		return config.NodeEnv
	case "DB_USER":
		return config.DBUser
	case "DB_PASS":
		return config.DBPass
	case "DB_URI":
		return config.DBURI
	case "ACCESS_TOKEN_SECRET":
		return config.AccessTokenSecret
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
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// IsProduction reports whether the process runs in production deployment
// mode, which switches the identity cookie to Secure + SameSite=None.
func IsProduction() bool {
	return GetConfig("NODE_ENV") == "production"
}
