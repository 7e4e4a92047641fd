package api

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/qoiinfo/internal/logger"
	"github.com/samcharles93/qoiinfo/internal/version"
	"github.com/samcharles93/qoiinfo/pkg/qoi"
)

// DefaultMaxBodyBytes caps uploads. Only the first qoi.HeaderSize bytes are
// inspected, but whole files are accepted so clients can post them as is.
const DefaultMaxBodyBytes int64 = 1 << 20

type Config struct {
	MaxBodyBytes int64
	Logger       logger.Logger
	Now          func() time.Time
}

type Server struct {
	store   *HeaderStore
	maxBody int64
	log     logger.Logger
	now     func() time.Time
}

func NewServer(store *HeaderStore, cfg Config) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Server{
		store:   store,
		maxBody: cfg.MaxBodyBytes,
		log:     cfg.Logger.With("component", "api"),
		now:     cfg.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.POST("/v1/headers", s.handleCreateHeader)
	e.GET("/v1/headers", s.handleListHeaders)
	e.GET("/v1/headers/:id", s.handleGetHeader)
	e.DELETE("/v1/headers/:id", s.handleDeleteHeader)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, Health{Status: "ok", Version: version.String()})
}

func (s *Server) handleCreateHeader(c *echo.Context) error {
	data, err := readBody(c.Request().Body, s.maxBody)
	if err != nil {
		status, body := decodeFailure(err)
		return writeError(c, status, body)
	}

	name := c.QueryParam("name")
	h, err := qoi.DecodeHeader(bytes.NewReader(data))
	if err != nil {
		status, body := decodeFailure(err)
		s.log.Info("rejected upload", "name", name, "size", len(data), "reason", body.Type)
		return writeError(c, status, body)
	}

	rec := s.store.Put(HeaderRecord{
		Object:          "qoi.header",
		CreatedAt:       s.now().Unix(),
		Name:            name,
		Size:            len(data),
		Width:           h.Width,
		Height:          h.Height,
		Pixels:          h.Pixels(),
		Channels:        uint8(h.Channels),
		ChannelsLabel:   h.Channels.String(),
		Colorspace:      uint8(h.Colorspace),
		ColorspaceLabel: h.Colorspace.String(),
		Report:          qoi.RenderReport(reportName(name), h.Width, h.Height, h.Channels.String(), h.Colorspace.String()),
	})
	s.log.Debug("decoded upload", "id", rec.ID, "width", rec.Width, "height", rec.Height)
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleListHeaders(c *echo.Context) error {
	return c.JSON(http.StatusOK, HeaderList{Object: "list", Data: s.store.List()})
}

func (s *Server) handleGetHeader(c *echo.Context) error {
	id := c.Param("id")
	rec, ok := s.store.Get(id)
	if !ok {
		return writeNotFound(c, "header not found: "+id)
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) handleDeleteHeader(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "header not found: "+id)
	}
	return c.JSON(http.StatusOK, DeletedRecord{ID: id, Object: "qoi.header.deleted", Deleted: true})
}

func readBody(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}

func reportName(name string) string {
	if name == "" {
		return "<upload>"
	}
	return name
}
