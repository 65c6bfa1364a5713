package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Refresh        Refresh        `mapstructure:",squash"`
	PeriodRollover PeriodRollover `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Refresh configures the bus ticker and the event stream
type Refresh struct {
	TickInterval      time.Duration `mapstructure:"refresh_tick_interval"`
	TickEnabled       bool          `mapstructure:"refresh_tick_enabled"`
	EventStreamBuffer int           `mapstructure:"event_stream_buffer"`
	EventStreamIdle   time.Duration `mapstructure:"event_stream_keepalive"`
}

type PeriodRollover struct {
	CronSchedule string `mapstructure:"period_rollover_cron"`
	Enabled      bool   `mapstructure:"period_rollover_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/workforce?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// one refresh tick per minute
	viper.SetDefault("REFRESH_TICK_INTERVAL", "60s")
	viper.SetDefault("REFRESH_TICK_ENABLED", true)
	// events buffered per stream client, and how often idle clients get a comment line
	viper.SetDefault("EVENT_STREAM_BUFFER", 16)
	viper.SetDefault("EVENT_STREAM_KEEPALIVE", "25s")

	viper.SetDefault("PERIOD_ROLLOVER_CRON", "0 0 1 * *") // midnight on the first day of every month
	viper.SetDefault("PERIOD_ROLLOVER_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	if err := Decode(viper.AllSettings(), config); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Decode maps flat, env-style settings onto cfg using the same hooks as NewConfig
func Decode(settings map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return err
	}

	return decoder.Decode(settings)
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not read the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
