package driver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alorle/nexum-portal/internal/application"
	"github.com/alorle/nexum-portal/internal/channel"
	"github.com/alorle/nexum-portal/internal/sponsor"
)

// ChannelHTTPHandler handles HTTP requests for the channel line-up.
type ChannelHTTPHandler struct {
	service *application.ChannelService
	probes  *application.ProbeService
}

// NewChannelHTTPHandler creates a new HTTP handler for channels.
// probes may be nil, in which case the probe route answers 404.
func NewChannelHTTPHandler(service *application.ChannelService, probes *application.ProbeService) *ChannelHTTPHandler {
	return &ChannelHTTPHandler{service: service, probes: probes}
}

// channelResponse represents a channel in JSON format.
type channelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StreamURL   string `json:"streamUrl"`
	IsLive      bool   `json:"isLive"`
	IsPremium   bool   `json:"isPremium"`
}

// sponsorResponse represents a sponsor in JSON format.
type sponsorResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Link   string `json:"link"`
	Accent string `json:"accent,omitempty"`
}

// ServeHTTP routes the request to the appropriate handler based on method and path.
func (h *ChannelHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/channels")

	// GET /channels
	if path == "" || path == "/" {
		h.handleList(w, r)
		return
	}

	// GET /channels/{id}/probe
	if rest, ok := strings.CutSuffix(path, "/probe"); ok {
		id, err := bindID(rest)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleProbe(w, r, id)
		return
	}

	// GET /channels/{id}
	id, err := bindID(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.handleGet(w, r, id)
}

// handleList handles GET /channels
func (h *ChannelHTTPHandler) handleList(w http.ResponseWriter, r *http.Request) {
	channels, err := h.service.ListChannels(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]channelResponse, len(channels))
	for i, ch := range channels {
		response[i] = toChannelResponse(ch)
	}

	writeJSON(w, http.StatusOK, response)
}

// handleGet handles GET /channels/{id}
func (h *ChannelHTTPHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	ch, err := h.service.GetChannel(r.Context(), id)
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toChannelResponse(ch))
}

// handleProbe handles GET /channels/{id}/probe
func (h *ChannelHTTPHandler) handleProbe(w http.ResponseWriter, r *http.Request, id string) {
	if h.probes == nil {
		writeError(w, http.StatusNotFound, "probing disabled")
		return
	}

	result, err := h.probes.ProbeChannel(r.Context(), id)
	if err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toProbeResultResponse(result))
}

// SponsorHTTPHandler serves the sponsor list.
type SponsorHTTPHandler struct {
	service *application.ChannelService
}

// NewSponsorHTTPHandler creates a new HTTP handler for sponsors.
func NewSponsorHTTPHandler(service *application.ChannelService) *SponsorHTTPHandler {
	return &SponsorHTTPHandler{service: service}
}

// ServeHTTP handles GET /sponsors
func (h *SponsorHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sponsors, err := h.service.ListSponsors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response := make([]sponsorResponse, len(sponsors))
	for i, s := range sponsors {
		response[i] = toSponsorResponse(s)
	}
	writeJSON(w, http.StatusOK, response)
}

func toChannelResponse(ch channel.Channel) channelResponse {
	return channelResponse{
		ID:          ch.ID(),
		Name:        ch.Name(),
		Description: ch.Description(),
		StreamURL:   ch.StreamURL(),
		IsLive:      ch.IsLive(),
		IsPremium:   ch.IsPremium(),
	}
}

func toSponsorResponse(s sponsor.Sponsor) sponsorResponse {
	return sponsorResponse{
		ID:     s.ID(),
		Name:   s.Name(),
		Logo:   s.Logo(),
		Link:   s.Link(),
		Accent: s.Accent(),
	}
}
