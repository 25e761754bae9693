package http

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"steaminvest/internal/refresh"
	pkgErrors "steaminvest/pkg/errors"
	"steaminvest/pkg/response"
)

// RefreshOne godoc
// @Summary     Refresh one item's price
// @Description Looks up the current market price for one item and persists the recomputed valuation. On lookup failure the stored price is left unchanged.
// @Tags        Refresh
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} refreshOneResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Market unavailable"
// @Router      /update/{id} [POST]
func (h *handler) RefreshOne(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, pkgErrors.NewHTTPError(400, "id must be a positive integer"))
		return
	}

	output, err := h.uc.RefreshOne(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.RefreshOne: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRefreshOneResp(output))
}

// RefreshAll godoc
// @Summary     Refresh all item prices
// @Description Starts a background bulk refresh over every item. Progress streams over the /ws/progress websocket. Only one run may be active at a time.
// @Tags        Refresh
// @Produce     json
// @Success     200 {object} startResp
// @Failure     409 {object} response.Resp "Run already in progress"
// @Router      /update [POST]
func (h *handler) RefreshAll(c *gin.Context) {
	ctx := c.Request.Context()

	// The run outlives the request: detach its context from the request so
	// the client disconnecting does not cancel it.
	runCtx := context.WithoutCancel(ctx)
	events, err := h.uc.RefreshAll(runCtx)
	if err != nil {
		h.l.Errorf(ctx, "uc.RefreshAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	go func() {
		for ev := range events {
			h.hub.Broadcast(runCtx, ev)
		}
	}()

	response.OK(c, startResp{Status: refresh.StatusRunning})
}

// Status godoc
// @Summary     Refresh run status
// @Description Reports whether a bulk run is active and the summary of the last finished run.
// @Tags        Refresh
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /update/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusResp(output))
}
