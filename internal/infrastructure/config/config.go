// Package config loads process settings from the environment.
//
// A .env file in the working directory is loaded by cmd/api through
// godotenv/autoload before Load runs, so every key below can live there.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"
)

type Config struct {
	Port              int
	LogLevel          string
	CatalogSource     string
	BookingBaseURL    string
	CalculatorBaseURL string
	AWS               AWSConfig
}

// AWSConfig is only read when CatalogSource is dynamodb.
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	ServicesTable   string
	DesignsTable    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_SOURCE", CatalogSourceStatic)
	v.SetDefault("BOOKING_BASE_URL", "/book")
	v.SetDefault("CALCULATOR_BASE_URL", "/calculator")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("SERVICES_TABLE", "services")
	v.SetDefault("DESIGNS_TABLE", "designs")
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Port:              v.GetInt("PORT"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		CatalogSource:     strings.ToLower(v.GetString("CATALOG_SOURCE")),
		BookingBaseURL:    v.GetString("BOOKING_BASE_URL"),
		CalculatorBaseURL: v.GetString("CALCULATOR_BASE_URL"),
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			ServicesTable:   v.GetString("SERVICES_TABLE"),
			DesignsTable:    v.GetString("DESIGNS_TABLE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	switch c.CatalogSource {
	case CatalogSourceStatic, CatalogSourceDynamoDB:
	default:
		return fmt.Errorf("config: unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	return nil
}
