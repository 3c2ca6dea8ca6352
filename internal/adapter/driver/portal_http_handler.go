package driver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alorle/nexum-portal/internal/application"
	"github.com/alorle/nexum-portal/internal/channel"
)

// Sponsor carousel actions accepted by POST /portal/sponsor.
const (
	sponsorActionNext   = "next"
	sponsorActionPrev   = "prev"
	sponsorActionSelect = "select"
)

// PortalHTTPHandler exposes the portal shell: the channel on air, the ticker,
// the sponsor carousel, the headline list and fullscreen presentation.
type PortalHTTPHandler struct {
	service *application.PortalService
}

// NewPortalHTTPHandler creates a new HTTP handler for the portal shell.
func NewPortalHTTPHandler(service *application.PortalService) *PortalHTTPHandler {
	return &PortalHTTPHandler{service: service}
}

type selectChannelRequest struct {
	ID string `json:"id"`
}

type sponsorRequest struct {
	Action string `json:"action"`
	Index  *int   `json:"index,omitempty"`
}

type playbackResponse struct {
	State    string `json:"state"`
	Message  string `json:"message,omitempty"`
	Terminal bool   `json:"terminal"`
}

type portalResponse struct {
	Channel        *channelResponse   `json:"channel,omitempty"`
	SessionID      string             `json:"session_id,omitempty"`
	Playback       playbackResponse   `json:"playback"`
	Ticker         string             `json:"ticker"`
	TickerIndex    int                `json:"ticker_index"`
	Sponsor        sponsorResponse    `json:"sponsor"`
	SponsorIndex   int                `json:"sponsor_index"`
	News           []newsItemResponse `json:"news"`
	NewsUpdatedAt  string             `json:"news_updated_at,omitempty"`
	Fullscreen     bool               `json:"fullscreen"`
	FullscreenIcon string             `json:"fullscreen_icon"`
}

// ServeHTTP routes the request to the appropriate handler based on method and path.
func (h *PortalHTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/portal"), "/")

	switch {
	case r.Method == http.MethodGet && path == "":
		h.writeSnapshot(w)
	case r.Method == http.MethodPost && path == "/channel":
		h.handleSelectChannel(w, r)
	case r.Method == http.MethodPost && path == "/live":
		h.handleGoLive(w)
	case r.Method == http.MethodPost && path == "/sponsor":
		h.handleSponsor(w, r)
	case r.Method == http.MethodPost && path == "/fullscreen":
		h.service.ToggleFullscreen(r.Context())
		h.writeSnapshot(w)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleSelectChannel handles POST /portal/channel
func (h *PortalHTTPHandler) handleSelectChannel(w http.ResponseWriter, r *http.Request) {
	var req selectChannelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SelectChannel(req.ID); err != nil {
		if errors.Is(err, channel.ErrChannelNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeSnapshot(w)
}

// handleGoLive handles POST /portal/live
func (h *PortalHTTPHandler) handleGoLive(w http.ResponseWriter) {
	if err := h.service.GoLive(); err != nil {
		if errors.Is(err, application.ErrNoLiveChannel) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeSnapshot(w)
}

// handleSponsor handles POST /portal/sponsor
func (h *PortalHTTPHandler) handleSponsor(w http.ResponseWriter, r *http.Request) {
	var req sponsorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Action {
	case sponsorActionNext:
		h.service.NextSponsor()
	case sponsorActionPrev:
		h.service.PrevSponsor()
	case sponsorActionSelect:
		if req.Index == nil {
			writeError(w, http.StatusBadRequest, "index is required for select")
			return
		}
		h.service.SelectSponsor(*req.Index)
	default:
		writeError(w, http.StatusBadRequest, "unknown sponsor action")
		return
	}

	h.writeSnapshot(w)
}

func (h *PortalHTTPHandler) writeSnapshot(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, toPortalResponse(h.service.Snapshot()))
}

func toPortalResponse(s application.PortalSnapshot) portalResponse {
	resp := portalResponse{
		SessionID: s.SessionID,
		Playback: playbackResponse{
			State:    string(s.Status.State),
			Message:  s.Status.Message,
			Terminal: s.Status.Terminal(),
		},
		Ticker:         s.TickerLine,
		TickerIndex:    s.TickerIndex,
		Sponsor:        toSponsorResponse(s.Sponsor),
		SponsorIndex:   s.SponsorIndex,
		News:           toNewsResponse(s.News),
		Fullscreen:     s.Fullscreen,
		FullscreenIcon: s.FullscreenIcon,
	}
	if s.Channel.ID() != "" {
		ch := toChannelResponse(s.Channel)
		resp.Channel = &ch
	}
	if !s.NewsUpdatedAt.IsZero() {
		resp.NewsUpdatedAt = s.NewsUpdatedAt.Format(time.RFC3339)
	}
	return resp
}
