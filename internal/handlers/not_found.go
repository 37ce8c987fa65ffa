package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peoplebook/peoplebook/internal/flash"
)

type NotFoundHandler struct {
	flashStore flash.Store
}

func NewNotFoundHandler(flashStore flash.Store) *NotFoundHandler {
	return &NotFoundHandler{
		flashStore: flashStore,
	}
}

// NotFound handles unmatched routes. It flashes the miss and renders the
// error page in the same request, so the message is consumed immediately
// and does not linger into the next page.
func (h *NotFoundHandler) NotFound(c *gin.Context) {
	setFlash(c, h.flashStore, flash.Error, "Page not found!")

	data := templateData(c, h.flashStore, gin.H{
		"Title":         "404 - Page Not Found",
		"RequestedPath": c.Request.URL.Path,
	})

	c.HTML(http.StatusNotFound, "universal", data)
}
