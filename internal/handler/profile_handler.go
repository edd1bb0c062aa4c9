/**
* Name: 			profile_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		프로필 생성, 목록/단건 조회, 추천 생성 및 번역
 */
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/localization"
	"HealthyHabits/internal/models"
	"HealthyHabits/internal/recommendation"
)

// /api/profiles 요청 바디
type CreateProfileRequest struct {
	models.ProfileInput
	Language string `json:"language" example:"hi"`
}

type CreateProfileResponse struct {
	Message         string                 `json:"message" example:"Profile saved for Asha."`
	Profile         models.Profile         `json:"profile"`
	Recommendations localization.Localized `json:"recommendations"`
}

type ProfilesResponse struct {
	Profiles []models.Profile `json:"profiles"`
}

type GenerateRequest struct {
	Conditions []string `json:"conditions" example:"Thyroid"`
	Goal       string   `json:"goal" example:"Weight Loss"`
	Language   string   `json:"language" example:"en"`
}

type RecommendationResponse struct {
	ProfileID       int64                  `json:"profile_id,omitempty" example:"1"`
	Conditions      []string               `json:"conditions"`
	Goal            string                 `json:"goal"`
	Rules           []string               `json:"rules"`
	Recommendations localization.Localized `json:"recommendations"`
}

// CreateProfile godoc
// @Summary      Create a profile
// @Description  Saves a profile and returns personalized recommendations in the chosen language.
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Param        request body handler.CreateProfileRequest true "profile form"
// @Success      201 {object} handler.CreateProfileResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	// 잘못된 언어 코드는 저장 전에 거부
	lang, err := localization.ParseLanguage(req.Language)
	if err != nil {
		h.respondError(c, err)
		return
	}

	profile, err := h.store.Save(c.Request.Context(), req.ProfileInput)
	if err != nil {
		h.respondError(c, err)
		return
	}

	set := recommendation.Generate(profile.Conditions, profile.Goal)
	c.JSON(http.StatusCreated, CreateProfileResponse{
		Message:         fmt.Sprintf("Profile saved for %s.", profile.Name),
		Profile:         profile,
		Recommendations: h.localizer.Localize(c.Request.Context(), set, lang),
	})
}

// ListProfiles godoc
// @Summary      List saved profiles
// @Description  Returns every saved profile, most recently created first.
// @Tags         Profiles
// @Produce      json
// @Success      200 {object} handler.ProfilesResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfilesResponse{Profiles: profiles})
}

// GetProfile godoc
// @Summary      Get one profile
// @Tags         Profiles
// @Produce      json
// @Param        id path int true "profile id"
// @Success      200 {object} models.Profile
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/profiles/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	profile, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ProfileRecommendations godoc
// @Summary      Recommendations for a saved profile
// @Description  Regenerates the recommendations from the stored conditions and goal.
// @Tags         Recommendations
// @Produce      json
// @Param        id       path  int    true  "profile id"
// @Param        language query string false "en or hi"
// @Success      200 {object} handler.RecommendationResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/profiles/{id}/recommendations [get]
func (h *Handler) ProfileRecommendations(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	lang, err := localization.ParseLanguage(c.Query("language"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	profile, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	set := recommendation.Generate(profile.Conditions, profile.Goal)
	c.JSON(http.StatusOK, RecommendationResponse{
		ProfileID:       profile.ID,
		Conditions:      profile.Conditions,
		Goal:            profile.Goal,
		Rules:           recommendation.Explain(profile.Conditions, profile.Goal),
		Recommendations: h.localizer.Localize(c.Request.Context(), set, lang),
	})
}

// GenerateRecommendations godoc
// @Summary      Preview recommendations
// @Description  Generates recommendations without saving a profile. Unknown conditions are ignored.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        request body handler.GenerateRequest true "conditions and goal"
// @Success      200 {object} handler.RecommendationResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/recommendations [post]
func (h *Handler) GenerateRecommendations(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	lang, err := localization.ParseLanguage(req.Language)
	if err != nil {
		h.respondError(c, err)
		return
	}

	conditions := models.NormalizeConditions(req.Conditions)
	set := recommendation.Generate(conditions, req.Goal)
	h.logger.Debug("preview generated", zap.Strings("conditions", conditions), zap.String("goal", req.Goal))

	c.JSON(http.StatusOK, RecommendationResponse{
		Conditions:      conditions,
		Goal:            req.Goal,
		Rules:           recommendation.Explain(conditions, req.Goal),
		Recommendations: h.localizer.Localize(c.Request.Context(), set, lang),
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError("Profile ID must be a positive integer.", "id", raw)
	}
	return id, nil
}
