package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create idea request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
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

// processConvertReq binds the optional convert body + URI param. An empty
// body is fine; the quadrant then defaults server-side.
func (h *handler) processConvertReq(c *gin.Context) (convertReq, error) {
	var req convertReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, errWrongBody
		}
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errWrongBody
	}
	return req, nil
}
