package http

import (
	"github.com/gin-gonic/gin"

	"steaminvest/pkg/response"
)

// Create godoc
// @Summary     Add an inventory item
// @Description Adds an item from its market listing link, resolving the name and an initial price.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List inventory items
// @Description Returns every item ordered by ascending id.
// @Tags        Inventory
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Search godoc
// @Summary     Search inventory items
// @Description Returns items whose name contains the keyword, case-insensitively.
// @Tags        Inventory
// @Produce     json
// @Param       keyword query string false "Name keyword"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.Keyword)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Inventory statistics
// @Description Aggregates cost, value and return over the whole inventory.
// @Tags        Inventory
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Inventory
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Updates an existing item. All fields are optional (partial update).
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID and returns the removed record.
// @Tags        Inventory
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
