package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peoplebook/peoplebook/internal/flash"
)

type PagesHandler struct {
	flashStore flash.Store
}

func NewPagesHandler(flashStore flash.Store) *PagesHandler {
	return &PagesHandler{
		flashStore: flashStore,
	}
}

// Welcome handles the root route
func (h *PagesHandler) Welcome(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Welcome to Peoplebook</h1>"))
}

// About displays the informational page
func (h *PagesHandler) About(c *gin.Context) {
	data := templateData(c, h.flashStore, gin.H{
		"Title": "About",
	})

	c.HTML(http.StatusOK, "about", data)
}
