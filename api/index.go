package handler

import (
	"kasaglow/config"
	"kasaglow/di"
	"kasaglow/shared/logger"
	"net/http"
	"sync"
)

var (
	app     http.Handler
	appOnce sync.Once
)

// Handler serves the application from a single serverless entrypoint. The
// wizard keeps its sessions in memory, so the instance is built once per process.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	appOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
