package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webext-tools/png-saver/internal/entity"
	"github.com/webext-tools/png-saver/internal/pkg/notifier"
)

func (h *ClickHandler) HandleClick(c *gin.Context) {
	var event entity.ClickEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidEvent.Error()})
		return
	}

	result, err := h.service.HandleClick(event)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": notifier.FormatFailure(err)})
		return
	}

	// Non-qualifying event: wrong menu item or no source URL.
	if result == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusAccepted, result)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrFetch):
		return http.StatusBadGateway
	case errors.Is(err, entity.ErrDecode):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
