package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"yourlinks/internal/metrics"
	"yourlinks/internal/model"
	"yourlinks/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// clickTimeout bounds the detached click recording per request. The redirect
// response never waits on it.
const clickTimeout = 2 * time.Second

// Page themes for expired and deactivated custom pages
var pageThemes = map[string]struct {
	Icon  string
	Color string
}{
	"expired":     {Icon: "fas fa-clock", Color: "#ff6b6b"},
	"deactivated": {Icon: "fas fa-ban", Color: "#4ecdc4"},
}

// RedirectHandler resolves every public request: host to tenant, path to
// link, lifecycle evaluation, and the terminal response.
type RedirectHandler struct {
	resolver service.HostResolverInterface
	links    service.LinkServiceInterface
	clicks   service.ClickRecorderInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	resolver service.HostResolverInterface,
	links service.LinkServiceInterface,
	clicks service.ClickRecorderInterface,
) *RedirectHandler {
	return &RedirectHandler{
		resolver: resolver,
		links:    links,
		clicks:   clicks,
	}
}

// Resolve handles every request not claimed by the API routes
func (h *RedirectHandler) Resolve(c *gin.Context) {
	start := time.Now()
	defer func() {
		metrics.ResolveDuration.Observe(time.Since(start).Seconds())
	}()

	res := h.resolver.Resolve(c.Request.Context(), c.Request.Host)
	path := service.NormalizePath(c.Request.URL.Path)

	switch res.Kind {
	case model.HostMainSite:
		h.serveMainSite(c, path)
		return
	case model.HostNotFound:
		metrics.RecordOutcome("not_found", "domain")
		c.String(http.StatusNotFound, "Domain not found")
		return
	}

	// Tenant host. An empty path goes to the owner's external profile.
	if path == "" {
		h.serveProfile(c, res.Username)
		return
	}

	link, err := h.links.Get(c.Request.Context(), res.Username, path)
	if err != nil {
		if !errors.Is(err, service.ErrLinkNotFound) {
			// Storage failure fails closed: same 404 as a missing link.
			log.Error().Err(err).Str("username", res.Username).Str("link_name", path).Msg("Link lookup failed")
		}
		metrics.RecordOutcome("not_found", "link")
		c.String(http.StatusNotFound, "Link not found")
		return
	}

	outcome := service.Classify(link, time.Now())

	if outcome.CountClick {
		h.recordClick(c, link, res.Username, outcome.State)
	}

	h.dispatch(c, outcome)
}

// serveMainSite renders the landing page at the root, and sends stray paths
// on the root host back to it
func (h *RedirectHandler) serveMainSite(c *gin.Context, path string) {
	if path == "" {
		c.HTML(http.StatusOK, "home.html", gin.H{})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// serveProfile redirects an empty-path tenant request to the owner's profile
func (h *RedirectHandler) serveProfile(c *gin.Context, username string) {
	target, err := h.links.ProfileURL(c.Request.Context(), username)
	if err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			log.Error().Err(err).Str("username", username).Msg("Profile lookup failed")
		}
		metrics.RecordOutcome("not_found", "user")
		c.String(http.StatusNotFound, "User not found")
		return
	}
	metrics.RecordOutcome("redirect", "profile")
	c.Redirect(http.StatusFound, target)
}

// dispatch turns a lifecycle outcome into the wire response
func (h *RedirectHandler) dispatch(c *gin.Context, outcome service.Outcome) {
	switch outcome.Kind {
	case service.OutcomeRedirect:
		metrics.RecordOutcome("redirect", outcome.State.String())
		c.Redirect(http.StatusFound, outcome.Location)
	case service.OutcomeCustomPage:
		metrics.RecordOutcome("custom_page", outcome.State.String())
		theme := pageThemes[outcome.PageKind]
		c.HTML(http.StatusOK, "link_status.html", gin.H{
			"Title":   outcome.PageTitle,
			"Message": outcome.PageMessage,
			"Kind":    outcome.PageKind,
			"Icon":    theme.Icon,
			"Color":   theme.Color,
		})
	default:
		metrics.RecordOutcome("not_found", outcome.State.String())
		c.String(http.StatusNotFound, outcome.Message)
	}
}

// recordClick runs click recording detached from the request lifecycle
func (h *RedirectHandler) recordClick(c *gin.Context, link *model.Link, username string, state model.State) {
	visit := model.Visit{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), clickTimeout)
		defer cancel()

		if err := h.clicks.Record(ctx, link, username, visit, state); err != nil {
			log.Error().Err(err).Int64("link_id", link.ID).Msg("Failed to record click")
		}
	}()
}
