package main

import (
	"kasaglow/config"
	"kasaglow/di"
	"kasaglow/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
