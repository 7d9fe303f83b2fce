package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/bible"
)

// BookHandler serves the fixed catalog the client's book picker renders.
type BookHandler struct{}

func NewBookHandler() *BookHandler {
	return &BookHandler{}
}

func (h *BookHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"books": bible.Books()})
}
