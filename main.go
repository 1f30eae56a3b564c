package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"veyra-io/estates-web/backend"
	"veyra-io/estates-web/configs"
	"veyra-io/estates-web/controllers"
	"veyra-io/estates-web/routes"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := configs.PingRedis(ctx); err != nil {
		log.Fatal("redis connection failed: ", err)
	}
	slog.Info("redis connection successful")

	apiURL := configs.LoadEnvFor("BACKEND_API_URL")
	if apiURL == "" {
		log.Fatal("BACKEND_API_URL is not set")
	}
	controllers.Init(backend.NewClient(apiURL))

	router := routes.InitRoute()

	addr := configs.LoadEnvOr("LISTEN_ADDR", ":8080")
	slog.Info("server starting", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
