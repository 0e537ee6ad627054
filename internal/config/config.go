package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

var configSingleton *ConfigSingleTon
var muOnce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	DbName string `mapstructure:"POSTGRES_DB"`
	DbHost string `mapstructure:"POSTGRES_HOST"`
	DbPort string `mapstructure:"POSTGRES_PORT"`
	DbUser string `mapstructure:"POSTGRES_USER"`
	DbPas  string `mapstructure:"POSTGRES_PASSWORD"`

	MqHost string `mapstructure:"RABBITMQ_HOST"`
	MqPort string `mapstructure:"RABBITMQ_PORT"`
	MqUser string `mapstructure:"RABBITMQ_DEFAULT_USER"`
	MqPas  string `mapstructure:"RABBITMQ_DEFAULT_PASS"`

	OrderQueue   string `mapstructure:"ORDER_QUEUE"`
	MigrationURL string `mapstructure:"MIGRATION_URL"`
}

// DbSource formats the postgres connection string consumed by pgx and migrate.
func (cf *Config) DbSource() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cf.DbUser, cf.DbPas, cf.DbHost, cf.DbPort, cf.DbName)
}

// MqURL formats the AMQP broker URL.
func (cf *Config) MqURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", cf.MqUser, cf.MqPas, cf.MqHost, cf.MqPort)
}

// Broker connector contract: 3 attempts, fixed 5s delay, 600s heartbeat.
const (
	MqMaxRetries  = 3
	MqRetryDelay  = 5 * time.Second
	MqHeartbeat   = 600 * time.Second
	MqDialTimeout = 30 * time.Second
)

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	if configSingleton == nil {
		muOnce.Do(func() {
			configSingleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				configSingleton.Config = cf
			} else {
				log.Fatal("error reading config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					configSingleton.mu.Lock()
					configSingleton.Config = cf
					configSingleton.mu.Unlock()
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

func loadConfig() (cf *Config, err error) {
	setDefaults()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// .env is optional, environment variables and defaults cover everything
	_ = viper.ReadInConfig()

	cf = &Config{}
	err = viper.Unmarshal(cf)
	if err != nil {
		return nil, err
	}
	return cf, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("POSTGRES_DB", "bakery_db")
	viper.SetDefault("POSTGRES_HOST", "db")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "bakery_user")
	viper.SetDefault("POSTGRES_PASSWORD", "bakery_pass")
	viper.SetDefault("RABBITMQ_HOST", "rabbitmq")
	viper.SetDefault("RABBITMQ_PORT", "5672")
	viper.SetDefault("RABBITMQ_DEFAULT_USER", "guest")
	viper.SetDefault("RABBITMQ_DEFAULT_PASS", "guest")
	viper.SetDefault("ORDER_QUEUE", "order_queue")
	viper.SetDefault("MIGRATION_URL", "file://internal/infra/repository/db/migrations")
}
