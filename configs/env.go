package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnvFor returns the value of an environment variable, loading .env first.
func LoadEnvFor(v string) (x string) {
	envOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	})

	x = os.Getenv(v)
	return
}

// LoadEnvOr is LoadEnvFor with a fallback for optional settings.
func LoadEnvOr(v, fallback string) string {
	if x := LoadEnvFor(v); x != "" {
		return x
	}
	return fallback
}
