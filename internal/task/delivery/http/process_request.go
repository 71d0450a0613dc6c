package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processCreateWithAIReq binds and validates the AI-assisted create body.
func (h *handler) processCreateWithAIReq(c *gin.Context) (createWithAIReq, error) {
	var req createWithAIReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processUpdateReq binds and validates the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errWrongBody
	}
	return req, nil
}

// processReorderReq binds and validates the reorder request body.
func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

// processReflectionReq binds and validates the reflection body + URI param.
func (h *handler) processReflectionReq(c *gin.Context) (reflectionReq, error) {
	var req reflectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, errWrongBody
	}
	return req, nil
}
