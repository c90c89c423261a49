package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Debug     bool    `yaml:"debug"`
	AppSecret string  `yaml:"app_secret" env:"APP_SECRET" env-required:"true"`
	Limiter   Limiter `yaml:"limiter"`
	Server    Server  `yaml:"server"`
	Redis     Redis   `yaml:"redis"`
	Omdb      Omdb    `yaml:"omdb"`
	Tasks     Tasks   `yaml:"tasks"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
}

type Server struct {
	Port string `yaml:"port" env-default:"8000"`
	Host string `yaml:"host" env-default:"localhost"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"2s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"2s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-required:"true"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type Omdb struct {
	ApiKey       string        `yaml:"api_key" env:"OMDB_API_KEY" env-required:"true"`
	BaseURL      string        `yaml:"base_url" env-default:"https://www.omdbapi.com"`
	Timeout      time.Duration `yaml:"timeout" env-default:"10s"`
	RetriesCount int           `yaml:"retries_count" env-default:"2"`
}

type Tasks struct {
	MaxWorkers int `yaml:"max_workers" env-default:"4"`
	QueueSize  int `yaml:"queue_size" env-default:"64"`
}

func MustLoad(configPath string) *Config {
	var cfg Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic(fmt.Errorf("config file %s not found", configPath))
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic(err)
	}

	return &cfg
}
