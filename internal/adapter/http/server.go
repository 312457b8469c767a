package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/mediahub/internal/adapter/http/middleware"
	"github.com/bnema/mediahub/internal/adapter/http/ratelimit"
	"github.com/bnema/mediahub/internal/infrastructure/backoff"
	"github.com/bnema/mediahub/internal/infrastructure/metrics"
	"github.com/bnema/mediahub/internal/port"
	"github.com/bnema/mediahub/internal/service"
)

const apiPrefix = "/api/v1"

// Deps holds everything the HTTP server serves.
type Deps struct {
	Auth       *service.AuthService
	Catalog    *service.CatalogService
	Sliders    *service.SliderService
	Engagement *service.EngagementService
	Uploads    *service.UploadService
	Jobs       port.JobQueue
	Events     *service.EventBus

	// Metrics and Gatherer are optional. /metrics is only routed with a Gatherer.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	CSRFSecret     string
	AllowedOrigins []string
	MaxVideoBytes  int64
	MaxImageBytes  int64
	BehindProxy    bool
}

type Server struct {
	mux     *http.ServeMux
	handler http.Handler

	auth       *service.AuthService
	catalog    *service.CatalogService
	sliders    *service.SliderService
	engagement *service.EngagementService
	uploads    *service.UploadService
	jobs       port.JobQueue
	sse        *SSEHandler

	limiter    *ratelimit.LoginRateLimiter
	failures   *ratelimit.FailureTracker
	loginDelay *backoff.Backoff

	maxVideoBytes int64
	maxImageBytes int64
	behindProxy   bool
}

func NewServer(d Deps) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		auth:       d.Auth,
		catalog:    d.Catalog,
		sliders:    d.Sliders,
		engagement: d.Engagement,
		uploads:    d.Uploads,
		jobs:       d.Jobs,
		sse:        NewSSEHandler(d.Events, d.Catalog),

		limiter: ratelimit.NewLoginRateLimiter(
			5,
			15*time.Minute,
			30*time.Minute,
		),
		failures: ratelimit.NewFailureTracker(),
		loginDelay: backoff.New(
			500*time.Millisecond,
			10*time.Second,
			2.0,
		),

		maxVideoBytes: d.MaxVideoBytes,
		maxImageBytes: d.MaxImageBytes,
		behindProxy:   d.BehindProxy,
	}

	s.registerRoutes()
	s.registerStatic()
	if d.Gatherer != nil {
		s.mux.Handle("GET /metrics", metrics.Handler(d.Gatherer))
	}

	csrf := middleware.NewCSRFProtection(d.CSRFSecret, CookieName)
	var h http.Handler = s.mux
	h = csrf.Middleware(h)
	h = d.Metrics.Middleware(h)
	h = middleware.CORS(d.AllowedOrigins)(h)
	s.handler = middleware.SecurityHeaders(h)
	return s
}

func (s *Server) registerRoutes() {
	route := func(pattern string, h http.HandlerFunc) {
		method, path, _ := strings.Cut(pattern, " ")
		s.mux.HandleFunc(method+" "+apiPrefix+path, h)
	}

	route("POST /auth/register", s.handleRegister)
	route("POST /auth/login", s.handleLogin(s.auth.Login))
	route("POST /auth/logout", s.handleLogout)
	route("GET /auth/me", s.requireUser(s.handleMe))
	route("PUT /auth/me", s.requireUser(s.handleUpdateProfile))
	route("POST /auth/password", s.requireUser(s.handleChangePassword))

	route("POST /admin/login", s.handleLogin(s.auth.AdminLogin))
	route("GET /admin/users", s.requireAdmin(s.handleListUsers))
	route("DELETE /admin/users/{id}", s.requireAdmin(s.handleDeleteUser))
	route("GET /admin/roles", s.requireAdmin(s.handleRoles))

	route("GET /media", s.handleListMedia)
	route("GET /media/search", s.handleSearch)
	route("GET /media/latest", s.handleLatest)
	route("GET /media/trending", s.handleTrending)
	route("GET /media/popular", s.handlePopular)
	route("GET /media/genres", s.handleGenres)
	route("GET /media/{id}", s.handleGetMedia)
	route("GET /media/{id}/related", s.handleRelated)
	route("POST /media/{id}/view", s.handleRecordView)
	route("GET /media/{id}/likes", s.handleLikeCount)
	route("GET /sports/live", s.handleLiveSports)
	route("GET /sports/upcoming", s.handleUpcomingSports)
	route("GET /news/breaking", s.handleBreakingNews)

	route("POST /media", s.requireContentManager(s.handleCreateMedia))
	route("PUT /media/{id}", s.requireContentManager(s.handleUpdateMedia))
	route("DELETE /media/{id}", s.requireContentManager(s.handleDeleteMedia))
	route("POST /media/{id}/upload", s.requireContentManager(s.handleUpload))
	route("GET /media/{id}/events", s.requireAdmin(s.sse.Events()))
	route("GET /jobs/{id}", s.requireAdmin(s.handleGetJob))

	route("GET /sliders", s.handleActiveSliders)
	route("GET /sliders/all", s.requireAdmin(s.handleListSliders))
	route("POST /sliders", s.requireContentManager(s.handleCreateSlider))
	route("PUT /sliders/{id}", s.requireContentManager(s.handleUpdateSlider))
	route("DELETE /sliders/{id}", s.requireContentManager(s.handleDeleteSlider))

	route("GET /me/{kind}", s.requireUser(s.handleListEngagements))
	route("POST /me/{kind}", s.requireUser(s.handleAddEngagement))
	route("DELETE /me/{kind}", s.requireUser(s.handleClearEngagements))
	route("GET /me/{kind}/{mediaID}", s.requireUser(s.handleContainsEngagement))
	route("DELETE /me/{kind}/{mediaID}", s.requireUser(s.handleRemoveEngagement))

	s.mux.HandleFunc("GET /watch/{id}", s.handleWatch)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) registerStatic() {
	s.mux.Handle("GET "+service.PublicRoute+"/", http.StripPrefix(service.PublicRoute, uploadsHandler(s.uploads.PublicUploadsDir())))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
