// Package gateway holds the HTTP clients for the external collaborators:
// the booking service, the room service, the templated-mail service and the
// document renderer. The clients translate transport-level status codes into
// the entity error taxonomy and carry no business logic.
package gateway

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}
}
