package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"HealthyHabits/internal/archiver"
)

// ExportProfiles godoc
// @Summary      Download saved profiles as CSV
// @Description  Same columns as the profile table: id, name, age, gender, conditions, goal, created_at.
// @Tags         Profiles
// @Produce      text/csv
// @Success      200 {file} file "profiles CSV"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/export/profiles.csv [get]
func (h *Handler) ExportProfiles(c *gin.Context) {
	profiles, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("healthyhabits_profiles_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	// 헤더 전송 이후의 실패는 응답을 바꿀 수 없으므로 로그만 남김
	if err := archiver.WriteProfiles(c.Writer, profiles); err != nil {
		h.logger.Error("profile export failed", zap.Error(err))
	}
}
