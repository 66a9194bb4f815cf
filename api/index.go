package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler serves the API from a serverless function. The app is wired on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		if err := timezone.Setup(cfg.App.Timezone); err != nil {
			log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
		}

		handler = di.InitializeApp().HTTP.Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
