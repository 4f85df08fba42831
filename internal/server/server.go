package server

import (
	"io"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coinfolio-dev/coinfolio/internal/holdings"
	"github.com/coinfolio-dev/coinfolio/internal/importer"
	"github.com/coinfolio-dev/coinfolio/internal/model"
)

// Server exposes the portfolio over HTTP.
type Server struct {
	R        *gin.Engine
	Importer *importer.Importer
	Logger   *zap.Logger
	MaxBytes int64
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New wires the router, importer, and middleware.
func New(im *importer.Importer, logger *zap.Logger, corsOrigin string, maxBytes int64) *Server {
	g := gin.New()

	// Request logging
	g.Use(func(cn *gin.Context) {
		start := time.Now()
		cn.Next()
		logger.Info("http_request",
			zap.String("method", cn.Request.Method),
			zap.String("path", cn.Request.URL.Path),
			zap.Int("status", cn.Writer.Status()),
			zap.String("ip", cn.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	})

	g.Use(gin.Recovery())

	// CORS
	g.Use(func(cn *gin.Context) {
		origin := cn.GetHeader("Origin")
		cn.Writer.Header().Set("Vary", "Origin")
		cn.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		cn.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		cn.Writer.Header().Set("Access-Control-Max-Age", "86400")
		if corsOrigin == "*" {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && origin == corsOrigin {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", corsOrigin)
		}
		if cn.Request.Method == http.MethodOptions {
			cn.AbortWithStatus(http.StatusNoContent)
			return
		}
		cn.Next()
	})

	s := &Server{
		R:        g,
		Importer: im,
		Logger:   logger,
		MaxBytes: maxBytes,
	}

	g.GET("/health", func(cn *gin.Context) { cn.JSON(http.StatusOK, gin.H{"ok": true}) })
	g.GET("/api/holdings", s.getHoldings)
	g.GET("/api/summary", s.getSummary)
	g.GET("/api/export", s.getExport)
	g.GET("/api/template", s.getTemplate)
	g.POST("/api/import", s.postImport)

	return s
}

// --- Helpers ---

func (s *Server) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, apiError{Code: "bad_request", Message: msg})
}

func (s *Server) internalError(c *gin.Context, where string, err error) {
	s.Logger.Error("internal_error", zap.String("where", where), zap.Error(err))
	c.JSON(http.StatusInternalServerError, apiError{Code: "internal_server_error", Message: "internal server error"})
}

// --- Handlers ---

func (s *Server) getHoldings(c *gin.Context) {
	rows := s.Importer.Store().Snapshot()
	if rows == nil {
		rows = []model.Holding{}
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, holdings.Summarize(s.Importer.Store().Snapshot()))
}

func (s *Server) getExport(c *gin.Context) {
	csv := holdings.ExportCSV(s.Importer.Store().Snapshot())
	c.Header("Content-Disposition", `attachment; filename="portfolio.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func (s *Server) getTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="portfolio-template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(holdings.TemplateCSV()))
}

// postImport accepts either a multipart upload under the "file" field or a
// raw CSV body, runs one import batch, and returns the batch result. The
// merge mode comes from the "mode" query parameter, defaulting to replace.
func (s *Server) postImport(c *gin.Context) {
	mode, err := model.ParseMergeMode(c.Query("mode"))
	if err != nil {
		s.badRequest(c, err.Error())
		return
	}

	body, name, err := s.readUpload(c)
	if err != nil {
		s.badRequest(c, err.Error())
		return
	}
	if err := importer.ValidateFile(name, int64(len(body)), s.MaxBytes); err != nil {
		s.badRequest(c, err.Error())
		return
	}

	result := s.Importer.ImportString(string(body), mode)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}

func (s *Server) readUpload(c *gin.Context) ([]byte, string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, s.MaxBytes+1))
		if err != nil {
			return nil, "", err
		}
		return data, file.Filename, nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, s.MaxBytes+1))
	if err != nil {
		return nil, "", err
	}
	return data, "upload.csv", nil
}
