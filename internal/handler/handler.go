package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/localization"
	"HealthyHabits/internal/middleware"
	"HealthyHabits/internal/models"
)

// ProfileStore is the persistence the handlers need.
type ProfileStore interface {
	Save(ctx context.Context, in models.ProfileInput) (models.Profile, error)
	ListAll(ctx context.Context) ([]models.Profile, error)
	FindByID(ctx context.Context, id int64) (models.Profile, error)
	Health(ctx context.Context) map[string]string
}

// Localizer renders recommendations in the requested language.
type Localizer interface {
	Localize(ctx context.Context, set models.RecommendationSet, target language.Tag) localization.Localized
	Available() bool
}

type Handler struct {
	store     ProfileStore
	localizer Localizer
	logger    *zap.Logger
}

func New(store ProfileStore, localizer Localizer, logger *zap.Logger) *Handler {
	return &Handler{store: store, localizer: localizer, logger: logger}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/options", h.Options)
		api.GET("/about", h.About)
		api.POST("/profiles", h.CreateProfile)
		api.GET("/profiles", h.ListProfiles)
		api.GET("/profiles/:id", h.GetProfile)
		api.GET("/profiles/:id/recommendations", h.ProfileRecommendations)
		api.POST("/recommendations", h.GenerateRecommendations)
		api.GET("/export/profiles.csv", h.ExportProfiles)
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"Please enter a name."`
	Field string `json:"field,omitempty" example:"name"`
}

// respondError maps domain errors to status codes. Anything else is a 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		verr *apperrors.ValidationError
		nf   *apperrors.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(verr.StatusCode, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.As(err, &nf):
		c.JSON(nf.StatusCode, ErrorResponse{Error: nf.Message})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
