package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/transport/http"
)

// App bundles the HTTP server with the clients main closes on shutdown.
type App struct {
	Config *config.Config
	HTTP   *http.HTTP
	Kafka  kafka.Client
	Otel   otel.Otel
}
