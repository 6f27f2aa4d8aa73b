package handler

import (
	"path/filepath"

	"github.com/deppfellow/storefront/internal/server"
	"github.com/labstack/echo/v4"
)

// RootHandler serves the landing page from the static directory.
type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

func (h *RootHandler) ServeIndex(c echo.Context) error {
	return c.File(filepath.Join(h.server.Config.Server.StaticDir, "index.html"))
}
