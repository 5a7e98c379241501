package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/auth"
	"taskflow/internal/middleware"
	"taskflow/internal/store"
	"taskflow/internal/timeline"
)

// writeError maps domain errors to a status and a JSON error body.
func writeError(c *gin.Context, err error) {
	var storeErr *store.ValidationError
	var authErr *auth.ValidationError
	switch {
	case errors.As(err, &storeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": storeErr.Message, "field": storeErr.Field})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": authErr.Message, "field": authErr.Field})
	case errors.Is(err, store.ErrNothingToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, auth.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, store.ErrConstraintViolation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, timeline.ErrGestureActive), errors.Is(err, timeline.ErrNoGesture):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, timeline.ErrOutsideGrid), errors.Is(err, timeline.ErrNoTarget),
		errors.Is(err, timeline.ErrInvalidBounds):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func pathID(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	}
	return id, ok
}
