package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-task-management/internal/classifier"
	"eisenhower-task-management/internal/middleware"
	"eisenhower-task-management/internal/model"
	pkgErrors "eisenhower-task-management/pkg/errors"
	"eisenhower-task-management/pkg/log"
	"eisenhower-task-management/pkg/response"
)

var errWrongBody = pkgErrors.NewHTTPError(400, "invalid request body")

type handler struct {
	l log.Logger
	c classifier.Classifier
}

// New creates a handler exposing the classifier directly, without touching
// any store. Clients use it to preview a placement.
func New(l log.Logger, c classifier.Classifier) *handler {
	return &handler{l: l, c: c}
}

// RegisterRoutes maps the classify endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, aiLimit gin.HandlerFunc) {
	ai := rg.Group("/ai", mw.Auth())
	{
		ai.POST("/classify", aiLimit, h.Classify)
	}
}

type classifyReq struct {
	Text            string `json:"text"             binding:"required,min=1,max=500"`
	CurrentQuadrant string `json:"current_quadrant" binding:"omitempty,oneof=q1 q2 q3 q4"`
	UserGoal        string `json:"user_goal"        binding:"max=500"`
	UserPriority    string `json:"user_priority"    binding:"max=500"`
}

type classifyResp struct {
	IsIdea              bool   `json:"is_idea"`
	SuggestedQuadrant   string `json:"suggested_quadrant,omitempty"`
	TaskType            string `json:"task_type,omitempty"`
	ConnectedToPriority bool   `json:"connected_to_priority"`
	Reasoning           string `json:"reasoning"`
	AlignmentScore      int    `json:"alignment_score"`
	UrgencyScore        int    `json:"urgency_score"`
	ImportanceScore     int    `json:"importance_score"`
	Fallback            bool   `json:"fallback"`
}

// Classify godoc
// @Summary     Classify task text
// @Description Runs the quadrant classifier on the given text without creating anything.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Text to classify"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BearerAuth
// @Router      /api/v1/ai/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := middleware.GetScope(c); !ok {
		response.Unauthorized(c)
		return
	}

	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errWrongBody)
		return
	}

	current := model.Quadrant(req.CurrentQuadrant)
	if current == "" {
		current = model.DefaultQuadrant
	}

	result := h.c.Classify(ctx, classifier.Input{
		TaskText:        req.Text,
		UserGoal:        req.UserGoal,
		UserPriority:    req.UserPriority,
		CurrentQuadrant: current,
	})

	response.OK(c, classifyResp{
		IsIdea:              result.IsIdea,
		SuggestedQuadrant:   string(result.SuggestedQuadrant),
		TaskType:            string(result.TaskType),
		ConnectedToPriority: result.ConnectedToPriority,
		Reasoning:           result.Reasoning,
		AlignmentScore:      result.AlignmentScore,
		UrgencyScore:        result.UrgencyScore,
		ImportanceScore:     result.ImportanceScore,
		Fallback:            result.Fallback,
	})
}
