package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine: values then come
// from the process environment only.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// GetDuration parses values like "15s". Empty or malformed values give fallback.
func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: malformed duration %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
