package config

import "github.com/spf13/viper"

// Store driver names accepted in STORE_DRIVER.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// Config holds all runtime configuration, loaded from environment
// variables with sensible local-development defaults.
type Config struct {
	AppPort       string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	SQLiteDSN     string
	RabbitMQURL   string
}

// Load reads configuration from the environment. An empty RABBITMQ_URL
// disables order-event publishing entirely.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("STORE_DRIVER", DriverMongo)
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "ecom-cart")
	viper.SetDefault("SQLITE_DSN", "ecom-cart.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:       viper.GetString("APP_PORT"),
		StoreDriver:   viper.GetString("STORE_DRIVER"),
		MongoURI:      viper.GetString("MONGODB_URI"),
		MongoDatabase: viper.GetString("MONGODB_DATABASE"),
		SQLiteDSN:     viper.GetString("SQLITE_DSN"),
		RabbitMQURL:   viper.GetString("RABBITMQ_URL"),
	}
}
