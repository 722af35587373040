package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkholodov/storefront/internal/domain/errors"
	"github.com/mkholodov/storefront/internal/domain/model"
	"github.com/mkholodov/storefront/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated caller identity from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return model.Identity{}
	}
	ident, _ := val.(model.Identity)
	return ident
}

// writeDomainError maps domain errors onto HTTP statuses. Validation
// failures carry the offending field back to the client; everything else
// is a bare status. Unrecognized errors are logged with full detail before
// the client sees an opaque 500.
func writeDomainError(c *gin.Context, logger *slog.Logger, err error) {
	var validationErr *domainErrors.ValidationError
	var transitionErr *domainErrors.TransitionError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "validation",
			"field": validationErr.Field,
		})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "invalid transition",
			"from":  transitionErr.From,
			"to":    transitionErr.To,
		})
	case errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrConflict):
		c.Status(http.StatusConflict)
	default:
		logInternalError(c, logger, err)
		c.Status(http.StatusInternalServerError)
	}
}

func logInternalError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Error("internal error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
	)
}
