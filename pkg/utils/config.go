package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Stripe   StripeConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Session  SessionConfig
	Watcher  WatcherConfig
	Provider ProviderConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URL       string
	QueueName string
}

type SessionConfig struct {
	ExpiryHours int
}

type WatcherConfig struct {
	PollInterval time.Duration
}

type ProviderConfig struct {
	GenerationURL string
	GenerationKey string
	PlacesURL     string
	PlacesKey     string
	WeatherURL    string
	WeatherKey    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("REFUND_POLL_INTERVAL", "2s")
	viper.SetDefault("RABBITMQ_QUEUE", "booking_events")

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional when everything comes from the env.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Stripe: StripeConfig{
			SecretKey:      viper.GetString("STRIPE_SECRET_KEY"),
			PublishableKey: viper.GetString("STRIPE_PUBLISHABLE_KEY"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:       viper.GetString("RABBITMQ_URL"),
			QueueName: viper.GetString("RABBITMQ_QUEUE"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Watcher: WatcherConfig{
			PollInterval: viper.GetDuration("REFUND_POLL_INTERVAL"),
		},
		Provider: ProviderConfig{
			GenerationURL: viper.GetString("GENERATION_API_URL"),
			GenerationKey: viper.GetString("GENERATION_API_KEY"),
			PlacesURL:     viper.GetString("PLACES_API_URL"),
			PlacesKey:     viper.GetString("PLACES_API_KEY"),
			WeatherURL:    viper.GetString("WEATHER_API_URL"),
			WeatherKey:    viper.GetString("WEATHER_API_KEY"),
		},
	}

	return config, nil
}
