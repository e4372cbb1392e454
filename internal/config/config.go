package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Printer    PrinterConfig
	Restaurant RestaurantConfig
	WhatsApp   WhatsAppConfig
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

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
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

type PrinterConfig struct {
	Type       string // usb, network, or none
	USBPath    string
	Address    string
	PaperWidth int // 58 or 80 (mm)
}

// RestaurantConfig seeds the default restaurant on first boot.
type RestaurantConfig struct {
	Slug          string
	Name          string
	Tagline       string
	Address       string
	Phone         string
	AdminEmail    string
	AdminPassword string
}

type WhatsAppConfig struct {
	CountryCode string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_PAPER_WIDTH", 80)
	viper.SetDefault("RESTAURANT_SLUG", "chingz-chinese")
	viper.SetDefault("RESTAURANT_NAME", "CHINGZ CHINESE")
	viper.SetDefault("RESTAURANT_TAGLINE", "FAST FOOD")
	viper.SetDefault("RESTAURANT_ADDRESS", "BAWARIYA KALAN BHOPAL")
	viper.SetDefault("RESTAURANT_PHONE", "")
	viper.SetDefault("ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("WHATSAPP_COUNTRY_CODE", "91")

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
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
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
		Printer: PrinterConfig{
			Type:       viper.GetString("PRINTER_TYPE"),
			USBPath:    viper.GetString("PRINTER_USB_PATH"),
			Address:    viper.GetString("PRINTER_ADDRESS"),
			PaperWidth: viper.GetInt("PRINTER_PAPER_WIDTH"),
		},
		Restaurant: RestaurantConfig{
			Slug:          viper.GetString("RESTAURANT_SLUG"),
			Name:          viper.GetString("RESTAURANT_NAME"),
			Tagline:       viper.GetString("RESTAURANT_TAGLINE"),
			Address:       viper.GetString("RESTAURANT_ADDRESS"),
			Phone:         viper.GetString("RESTAURANT_PHONE"),
			AdminEmail:    viper.GetString("ADMIN_EMAIL"),
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
		},
		WhatsApp: WhatsAppConfig{
			CountryCode: viper.GetString("WHATSAPP_COUNTRY_CODE"),
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
