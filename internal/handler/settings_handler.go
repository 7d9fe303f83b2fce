package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/service"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
}

type settingsRequest struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, apiErr := h.settingsService.Get(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	settings, apiErr := h.settingsService.Update(c.Request.Context(), req.Language, req.Theme)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
