package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bibleapp/backend/internal/progress"
	"bibleapp/backend/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

type planRequest struct {
	PlanName          string   `json:"planName"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	SelectedBookCodes []string `json:"selectedBookCodes"`
}

type goalStatusRequest struct {
	GoalStatus progress.GoalStatus `json:"goalStatus"`
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	plan, apiErr := h.planService.Create(c.Request.Context(), service.PlanInput{
		PlanName:          req.PlanName,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		SelectedBookCodes: req.SelectedBookCodes,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, apiErr := h.planService.List(c.Request.Context())
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	plan, apiErr := h.planService.GetByID(c.Request.Context(), id)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *PlanHandler) UpdateMetadata(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	plan, apiErr := h.planService.UpdateMetadata(c.Request.Context(), id, service.PlanInput{
		PlanName:          req.PlanName,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		SelectedBookCodes: req.SelectedBookCodes,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *PlanHandler) UpdateGoalStatus(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	var req goalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}

	plan, apiErr := h.planService.UpdateGoalStatus(c.Request.Context(), id, req.GoalStatus)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *PlanHandler) Delete(c *gin.Context) {
	id, ok := entityID(c)
	if !ok {
		return
	}

	if apiErr := h.planService.Remove(c.Request.Context(), id); apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.Status(http.StatusNoContent)
}
