package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HealthyHabits/internal/localization"
	"HealthyHabits/internal/models"
)

type AboutResponse struct {
	Title                string   `json:"title"`
	Summary              string   `json:"summary"`
	Disclaimer           string   `json:"disclaimer"`
	TranslationAvailable bool     `json:"translation_available"`
	Extensions           []string `json:"extensions"`
}

var about = AboutResponse{
	Title:      "HealthyHabits - Personalized Lifestyle Recommendations (English / Hindi)",
	Summary:    "HealthyHabits generates simple lifestyle suggestions for users with conditions like thyroid, sleep apnea, obesity, or heart risk.",
	Disclaimer: "This app is not a replacement for professional medical advice. Always consult a healthcare provider for diagnosis or treatment.",
	Extensions: []string{
		"Daily logging and progress charts",
		"Reminders or notifications via email/SMS",
		"Personalized meal plans or exercise videos",
		"Wearable data integration (step count, sleep metrics)",
	},
}

// Health godoc
// @Summary      Service health
// @Tags         System
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	stats := h.store.Health(c.Request.Context())
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Options godoc
// @Summary      Form vocabulary
// @Description  Genders, health conditions, goals and display languages accepted by the profile form.
// @Tags         Profiles
// @Produce      json
// @Success      200 {object} models.Vocabulary
// @Router       /api/options [get]
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, models.Vocabulary{
		Genders:    models.Genders,
		Conditions: models.Conditions,
		Goals:      models.Goals,
		Languages:  localization.Languages(),
		MinAge:     models.MinAge,
		MaxAge:     models.MaxAge,
	})
}

// About godoc
// @Summary      About & instructions
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.AboutResponse
// @Router       /api/about [get]
func (h *Handler) About(c *gin.Context) {
	resp := about
	resp.TranslationAvailable = h.localizer.Available()
	c.JSON(http.StatusOK, resp)
}
