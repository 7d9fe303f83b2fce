package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/service"
)

type BackupHandler struct {
	backupService *service.BackupService
}

func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) Export(c *gin.Context) {
	doc, apiErr := h.backupService.Export(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *BackupHandler) Import(c *gin.Context) {
	var doc service.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		writeInvalidJSON(c)
		return
	}

	if apiErr := h.backupService.Import(c.Request.Context(), doc); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
