package server

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codetidy/codetidy/internal/workflow"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Workflow is the slice of the orchestrator the HTTP layer needs.
type Workflow interface {
	Standardize(ctx context.Context, req workflow.StandardizeRequest) (*workflow.StandardizeReport, error)
	Translate(ctx context.Context, req workflow.TranslateRequest) (*workflow.TranslateResult, error)
}

type Server struct {
	engine      *gin.Engine
	workflow    Workflow
	scratchRoot string
	timeout     time.Duration
	logger      *slog.Logger
}

func New(wf Workflow, scratchRoot string, timeout time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	s := &Server{
		engine:      engine,
		workflow:    wf,
		scratchRoot: scratchRoot,
		timeout:     timeout,
		logger:      logger,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/standardize", s.handleStandardize)
	s.engine.POST("/translate", s.handleTranslate)
	s.engine.GET("/download/:id/:name", s.handleDownload)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return s.engine.Run(addr)
}
