package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"eisenhower-task-management/internal/middleware"
	"eisenhower-task-management/internal/model"
	"eisenhower-task-management/pkg/response"
)

type entryResp struct {
	TaskID            string    `json:"task_id"`
	SuggestedQuadrant string    `json:"suggested_quadrant"`
	TaskType          string    `json:"task_type"`
	Reasoning         string    `json:"reasoning"`
	AlignmentScore    int       `json:"alignment_score"`
	UrgencyScore      int       `json:"urgency_score"`
	ImportanceScore   int       `json:"importance_score"`
	Timestamp         time.Time `json:"timestamp"`
}

type listResp struct {
	Entries []entryResp `json:"entries"`
}

func newListResp(entries []model.ReasoningEntry) listResp {
	out := make([]entryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResp{
			TaskID:            e.TaskID,
			SuggestedQuadrant: string(e.SuggestedQuadrant),
			TaskType:          string(e.TaskType),
			Reasoning:         e.Reasoning,
			AlignmentScore:    e.AlignmentScore,
			UrgencyScore:      e.UrgencyScore,
			ImportanceScore:   e.ImportanceScore,
			Timestamp:         e.Timestamp,
		})
	}
	return listResp{Entries: out}
}

// List godoc
// @Summary     List classification reasoning
// @Description Returns the AI classification audit log, newest first.
// @Tags        Reasoning
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/reasoning [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	entries, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, newListResp(entries))
}

// Delete godoc
// @Summary     Delete one reasoning entry
// @Description Removes the entry for the given task id, if any.
// @Tags        Reasoning
// @Produce     json
// @Param       task_id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/reasoning/{task_id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("task_id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}

// Clear godoc
// @Summary     Clear the reasoning log
// @Description Drops every entry in the log.
// @Tags        Reasoning
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/reasoning [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Clear(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, nil)
}
