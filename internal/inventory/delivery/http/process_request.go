package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "steaminvest/pkg/errors"
)

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// parseID extracts the numeric :id URI param.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "id must be a positive integer")
	}
	return id, nil
}
