package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/peoplebook/peoplebook/internal/flash"
	"github.com/peoplebook/peoplebook/internal/middleware"
	"github.com/peoplebook/peoplebook/pkg/logger"
)

// templateData merges pending flash messages into the template data.
// Every rendered page consumes both severities exactly once; a failed
// take is logged and treated as absent.
func templateData(c *gin.Context, store flash.Store, data gin.H) gin.H {
	session := middleware.GetSession(c)
	if session == nil || store == nil {
		return data
	}

	ctx := c.Request.Context()

	if message, ok, err := store.Take(ctx, session.ID, flash.Success); err != nil {
		logger.WithError(err).Error("Failed to read success flash")
	} else if ok {
		data["SuccessMessage"] = message
	}

	if message, ok, err := store.Take(ctx, session.ID, flash.Error); err != nil {
		logger.WithError(err).Error("Failed to read error flash")
	} else if ok {
		data["ErrorMessage"] = message
	}

	return data
}

// setFlash stores a one-shot message for the next rendered page
func setFlash(c *gin.Context, store flash.Store, severity flash.Severity, message string) {
	session := middleware.GetSession(c)
	if session == nil || store == nil {
		return
	}

	if err := store.Set(c.Request.Context(), session.ID, severity, message); err != nil {
		logger.WithError(err).Error("Failed to set flash message")
	}
}
