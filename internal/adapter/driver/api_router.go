package driver

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// APIHandlers groups the handlers mounted under /api.
type APIHandlers struct {
	News     http.Handler
	Channels http.Handler
	Sponsors http.Handler
	Probes   http.Handler
	Portal   http.Handler
	Health   http.Handler
}

// NewAPIHandler mounts the API routes, strips the /api prefix and puts request
// validation and request metrics in front of them. doc is served as
// /api/openapi.json.
func NewAPIHandler(h APIHandlers, doc *openapi3.T) (http.Handler, error) {
	validate, err := NewRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("creating request validator: %w", err)
	}

	apiMux := http.NewServeMux()
	apiMux.Handle("/news", h.News)
	apiMux.Handle("/channels", h.Channels)
	apiMux.Handle("/channels/", h.Channels)
	apiMux.Handle("/sponsors", h.Sponsors)
	apiMux.Handle("/quality", h.Probes)
	apiMux.Handle("/quality/", h.Probes)
	apiMux.Handle("/probes/", h.Probes)
	apiMux.Handle("/portal", h.Portal)
	apiMux.Handle("/portal/", h.Portal)
	apiMux.Handle("/health", h.Health)
	apiMux.Handle("/openapi.json", NewDocumentationHandler(doc))

	return http.StripPrefix("/api", NewMetricsMiddleware(validate(apiMux))), nil
}
