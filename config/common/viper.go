package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		panic("failed read config")
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerAddr() string {
	addr := c.Viper.GetString("SERVER_ADDR")
	if addr == "" {
		addr = ":7730"
	}
	return addr
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

// GetWebhookSecret is the shared secret Telegram echoes back in the
// X-Telegram-Bot-Api-Secret-Token header.
func (c *Config) GetWebhookSecret() string {
	return c.Viper.GetString("TELEGRAM_WEBHOOK_SECRET")
}

// GetRedisAddr is empty when the antispam state should stay in process.
func (c *Config) GetRedisAddr() string {
	return c.Viper.GetString("REDIS_ADDR")
}

func (c *Config) GetRedisPassword() string {
	return c.Viper.GetString("REDIS_PASSWORD")
}
