package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Game      GameConfig      `mapstructure:"game"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	AllowOrigins string        `mapstructure:"alloworigins"`
	IdleTimeout  time.Duration `mapstructure:"idletimeout"`
	ReadTimeout  time.Duration `mapstructure:"readtimeout"`
	WriteTimeout time.Duration `mapstructure:"writetimeout"`
}

type GameConfig struct {
	RoundDurationSeconds int           `mapstructure:"rounddurationseconds"`
	MaxRounds            int           `mapstructure:"maxrounds"`
	Difficulty           string        `mapstructure:"difficulty"`
	InterRoundPause      time.Duration `mapstructure:"interroundpause"`
	CodeAttempts         int           `mapstructure:"codeattempts"`
	DisposeGrace         time.Duration `mapstructure:"disposegrace"`
}

// BroadcastConfig selects how room events reach sockets: "local" delivers in
// process, "redis" relays through the room:<id> pub/sub channels.
type BroadcastConfig struct {
	Mode string `mapstructure:"mode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
}

type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	ClientID     string        `mapstructure:"clientid"`
	WriteTimeout time.Duration `mapstructure:"writetimeout"`
	MaxAttempts  int           `mapstructure:"maxattempts"`
}

type RateLimitConfig struct {
	RequestsPerMinute        int `mapstructure:"requestsperminute"`
	Burst                    int `mapstructure:"burst"`
	PerRoomRequestsPerMinute int `mapstructure:"perroomrequestsperminute"`
	PerRoomBurst             int `mapstructure:"perroomburst"`
}

func Read() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")
	v.AddConfigPath("/")

	setDefaults(v)

	// ENV overrides with prefix QUICKDRAW_ and dot-to-underscore replacement
	v.SetEnvPrefix("QUICKDRAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		zap.L().Warn("Failed to read configuration file", zap.Error(err))
	}

	return decode(v)
}

func decode(v *viper.Viper) Config {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}
	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "quickdraw-service")
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.port", "2567")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.alloworigins", "*")
	v.SetDefault("server.idletimeout", 60*time.Second)
	v.SetDefault("server.readtimeout", 10*time.Second)
	v.SetDefault("server.writetimeout", 10*time.Second)

	v.SetDefault("game.rounddurationseconds", 90)
	v.SetDefault("game.maxrounds", 1)
	v.SetDefault("game.difficulty", "mixed")
	v.SetDefault("game.interroundpause", 2*time.Second)
	v.SetDefault("game.codeattempts", 10)
	v.SetDefault("game.disposegrace", 30*time.Second)

	v.SetDefault("broadcast.mode", "local")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("postgres.enabled", false)
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "myuser")
	v.SetDefault("postgres.password", "mypassword")
	v.SetDefault("postgres.db", "quickdrawdb")
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "quickdraw-events")
	v.SetDefault("kafka.clientid", "quickdraw-service")
	v.SetDefault("kafka.writetimeout", 10*time.Second)
	v.SetDefault("kafka.maxattempts", 3)

	v.SetDefault("ratelimit.requestsperminute", 600)
	v.SetDefault("ratelimit.burst", 60)
	v.SetDefault("ratelimit.perroomrequestsperminute", 240)
	v.SetDefault("ratelimit.perroomburst", 40)
}
