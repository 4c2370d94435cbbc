package handler

import (
	"net/http"
	"sync"
	"tourcrm/config"
	"tourcrm/di"
	"tourcrm/shared/logger"
	"tourcrm/shared/timezone"
	transport "tourcrm/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		timezone.Init(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
