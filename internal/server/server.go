package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/eftp/internal/linecode"
	"github.com/danmuck/eftp/internal/medium"
	"github.com/danmuck/eftp/internal/observability"
	"github.com/danmuck/eftp/internal/protocol/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server exposes the codec and one in-memory line over HTTP.
type Server struct {
	Name     string
	Addr     string
	Appeared time.Time

	line    *medium.Cable[linecode.Streams]
	session *session.Session
	router  *gin.Engine
	logger  zerolog.Logger
}

// Options wires the server to its line and session.
type Options struct {
	Name        string
	Addr        string
	CorsOrigins []string
	Line        *medium.Cable[linecode.Streams]
	Session     *session.Session
	Logger      zerolog.Logger
}

func New(opts Options) *Server {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.Instrument(opts.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  normalizeOrigins(opts.CorsOrigins),
		AllowMethods:  []string{"GET", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", observability.RequestIDHeader},
		ExposeHeaders: []string{observability.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	line := opts.Line
	if line == nil {
		line = medium.NewCable[linecode.Streams]()
	}
	sess := opts.Session
	if sess == nil {
		sess = session.New(line, nil, nil)
	}

	s := &Server{
		Name:     opts.Name,
		Addr:     opts.Addr,
		Appeared: time.Now(),
		line:     line,
		session:  sess,
		router:   r,
		logger:   opts.Logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP on Addr until the listener fails.
func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.Addr).Str("name", s.Name).Msg("eftpd listening")
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}
