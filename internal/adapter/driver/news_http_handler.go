package driver

import (
	"net/http"

	"github.com/alorle/nexum-portal/internal/application"
	"github.com/alorle/nexum-portal/internal/news"
)

// newsRevalidateSeconds is the revalidation hint given to the hosting layer.
const newsRevalidateSeconds = "300"

// NewsHTTPHandler serves the latest headlines.
type NewsHTTPHandler struct {
	service application.HeadlineSource
}

// NewNewsHTTPHandler creates a new HTTP handler for news.
func NewNewsHTTPHandler(service application.HeadlineSource) *NewsHTTPHandler {
	return &NewsHTTPHandler{service: service}
}

// newsItemResponse represents a headline in JSON format.
type newsItemResponse struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	URL      string `json:"url"`
	Date     string `json:"date"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category,omitempty"`
}

// ServeHTTP handles GET /news. It always answers 200: feed failures are
// already replaced by fallback items.
func (h *NewsHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	items := h.service.FetchHeadlines(r.Context())

	w.Header().Set("Cache-Control", "private, no-cache, no-store, max-age=0, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("X-Revalidate", newsRevalidateSeconds)
	writeJSON(w, http.StatusOK, toNewsResponse(items))
}

func toNewsResponse(items []news.Item) []newsItemResponse {
	response := make([]newsItemResponse, len(items))
	for i, it := range items {
		response[i] = newsItemResponse{
			Title:    it.Title(),
			Excerpt:  it.Excerpt(),
			URL:      it.URL(),
			Date:     it.Date(),
			Image:    it.Image(),
			Category: it.Category(),
		}
	}
	return response
}
