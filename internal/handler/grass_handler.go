package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/service"
)

type GrassHandler struct {
	grassService *service.GrassService
}

type replaceEntryRequest struct {
	Chapters []int `json:"chapters"`
}

func NewGrassHandler(grassService *service.GrassService) *GrassHandler {
	return &GrassHandler{grassService: grassService}
}

func (h *GrassHandler) GetDay(c *gin.Context) {
	day, apiErr := h.grassService.GetDay(c.Request.Context(), c.Param("date"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day})
}

func (h *GrassHandler) ReplaceBookEntry(c *gin.Context) {
	var req replaceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	day, apiErr := h.grassService.ReplaceBookEntry(
		c.Request.Context(),
		c.Param("date"),
		c.Param("bookCode"),
		req.Chapters,
	)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day})
}

func (h *GrassHandler) YearGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_year", "message": "year must be a positive integer"},
		})
		return
	}

	view, apiErr := h.grassService.YearGrid(c.Request.Context(), year)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, view)
}
