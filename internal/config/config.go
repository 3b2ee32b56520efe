package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Invoicing InvoicingConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// InvoicingConfig carries the business policy constants the import
// pipeline and invoice generation depend on. GSTRate applies to the
// taxable margin only (margin scheme), not the full sale price.
type InvoicingConfig struct {
	GSTRate              float64
	CompanyCode          string
	DefaultHSNCode       string
	DefaultUnit          string
	DefaultMarginTaxable float64
	DeclarationText      string
}

type StorageConfig struct {
	Path          string
	UploadMaxSize int64
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

const defaultDeclarationText = "1) The goods described in this invoice are pre-owned / second-hand goods supplied under the GST Margin Scheme in accordance with applicable provisions of the GST law.\n\n2) The invoice value represents the final and agreed transaction value between the parties under the Margin Scheme. Payment against this invoice shall be made in full as per the agreed terms and timelines.\n\n3) All particulars stated herein are true and correct to the best of our knowledge and belief at the time of issuance."

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "invoicing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "invoicing")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("GST_RATE", 0.18)
	viper.SetDefault("COMPANY_CODE", "INV")
	viper.SetDefault("DEFAULT_HSN_CODE", "640319")
	viper.SetDefault("DEFAULT_UNIT", "Pair")
	viper.SetDefault("DEFAULT_MARGIN_TAXABLE", 500.0)
	viper.SetDefault("DECLARATION_TEXT", defaultDeclarationText)
	viper.SetDefault("STORAGE_PATH", "./storage")
	viper.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Invoicing: InvoicingConfig{
			GSTRate:              viper.GetFloat64("GST_RATE"),
			CompanyCode:          viper.GetString("COMPANY_CODE"),
			DefaultHSNCode:       viper.GetString("DEFAULT_HSN_CODE"),
			DefaultUnit:          viper.GetString("DEFAULT_UNIT"),
			DefaultMarginTaxable: viper.GetFloat64("DEFAULT_MARGIN_TAXABLE"),
			DeclarationText:      viper.GetString("DECLARATION_TEXT"),
		},
		Storage: StorageConfig{
			Path:          viper.GetString("STORAGE_PATH"),
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
