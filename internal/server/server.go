// Package server exposes the conversion pipeline over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invoicemd/invoicemd/internal/common"
	"github.com/invoicemd/invoicemd/internal/export"
	"github.com/invoicemd/invoicemd/internal/pipeline"
)

// Server wires the pipeline and exports into a gin router.
type Server struct {
	pipeline *pipeline.Pipeline
	exports  *export.Service
	cfg      common.ServerConfig
	logger   *slog.Logger
}

func New(p *pipeline.Pipeline, ex *export.Service, cfg common.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{pipeline: p, exports: ex, cfg: cfg, logger: logger}
}

// Router builds the HTTP routes. gin's default recovery middleware is kept;
// access logging goes through slog instead of gin's own logger.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())
	r.MaxMultipartMemory = s.cfg.MaxUploadBytes

	r.GET("/health", s.handleHealth)

	v1 := r.Group("/v1")
	v1.POST("/convert", s.handleConvert)
	v1.POST("/convert/pdf", s.handleConvertPDF)
	v1.POST("/export", s.handleExport)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Info("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
		)
	}
}
