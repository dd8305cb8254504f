package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads envs from configs/.env (or the file pointed to by ENV_FILE)
// exactly once per process.
func New() *Config {
	once.Do(func() {
		envFile := os.Getenv("ENV_FILE")
		if envFile == "" {
			envFile = "./configs/.env"
		}
		err := godotenv.Load(envFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}
