package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-task-management/internal/middleware"
	"eisenhower-task-management/pkg/response"
)

// Create godoc
// @Summary     Add an idea
// @Description Prepends an idea to the Ideas Bank.
// @Tags        Idea
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Idea data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/ideas [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List ideas
// @Description Returns the Ideas Bank, newest first.
// @Tags        Idea
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/ideas [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update an idea
// @Description Merges the provided fields into the idea.
// @Tags        Idea
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Idea ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/ideas/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an idea
// @Description Removes the idea from the bank.
// @Tags        Idea
// @Produce     json
// @Param       id path string true "Idea ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/ideas/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Convert godoc
// @Summary     Convert an idea into a task
// @Description Removes the idea from the bank and creates a task from its text.
// @Tags        Idea
// @Accept      json
// @Produce     json
// @Param       id   path string     true  "Idea ID"
// @Param       body body convertReq false "Target quadrant (defaults to q4)"
// @Success     200 {object} convertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/ideas/{id}/convert [POST]
func (h *handler) Convert(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processConvertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Convert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Convert: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConvertResp(output))
}
