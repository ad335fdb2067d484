package handler

import (
	"net/http"
	"sync"

	"gomoto/config"
	"gomoto/di"
	"gomoto/shared/logger"
	transport "gomoto/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first call.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()
	server.ServeHTTP(w, r)
}
