package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/service"
)

type AnnotationHandler struct {
	annotations *service.AnnotationService
}

type favoriteRequest struct {
	BookCode  string `json:"bookCode"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	VerseText string `json:"verseText"`
}

type memoRequest struct {
	BookCode string `json:"bookCode"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Memo     string `json:"memo"`
}

type memoUpdateRequest struct {
	Memo string `json:"memo"`
}

type prayerRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Answered bool   `json:"answered"`
}

func NewAnnotationHandler(annotations *service.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{annotations: annotations}
}

func (h *AnnotationHandler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	favorite, apiErr := h.annotations.AddFavorite(c.Request.Context(), req.BookCode, req.Chapter, req.Verse, req.VerseText)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
}

func (h *AnnotationHandler) ListFavorites(c *gin.Context) {
	favorites, apiErr := h.annotations.ListFavorites(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *AnnotationHandler) RemoveFavorite(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if apiErr := h.annotations.RemoveFavorite(c.Request.Context(), id); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AnnotationHandler) AddMemo(c *gin.Context) {
	var req memoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	memo, apiErr := h.annotations.AddMemo(c.Request.Context(), req.BookCode, req.Chapter, req.Verse, req.Memo)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"memo": memo})
}

func (h *AnnotationHandler) ListMemos(c *gin.Context) {
	memos, apiErr := h.annotations.ListMemos(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"memos": memos})
}

func (h *AnnotationHandler) UpdateMemo(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req memoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	memo, apiErr := h.annotations.UpdateMemo(c.Request.Context(), id, req.Memo)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"memo": memo})
}

func (h *AnnotationHandler) RemoveMemo(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if apiErr := h.annotations.RemoveMemo(c.Request.Context(), id); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AnnotationHandler) AddPrayer(c *gin.Context) {
	var req prayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	entry, apiErr := h.annotations.AddPrayer(c.Request.Context(), req.Title, req.Content)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"prayer": entry})
}

func (h *AnnotationHandler) ListPrayers(c *gin.Context) {
	entries, apiErr := h.annotations.ListPrayers(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prayers": entries})
}

func (h *AnnotationHandler) UpdatePrayer(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req prayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	entry, apiErr := h.annotations.UpdatePrayer(c.Request.Context(), id, req.Title, req.Content, req.Answered)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prayer": entry})
}

func (h *AnnotationHandler) RemovePrayer(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}
	if apiErr := h.annotations.RemovePrayer(c.Request.Context(), id); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}

func entityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_id", "message": "id must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}
