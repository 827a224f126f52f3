package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1/response"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

type StatsService interface {
	Overview(ctx context.Context) (domain.OverviewStats, error)
	PerUser(ctx context.Context) ([]domain.UserStats, error)
}

type StatsHandler struct {
	svc     StatsService
	userSvc currentUserService
}

func NewStatsHandler(svc StatsService, userSvc currentUserService) *StatsHandler {
	return &StatsHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

// HandleOverview godoc
//
//	@Summary		Campaign-wide sponsor statistics
//	@Tags			stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.OverviewStats
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/stats/overview [get]
func (h *StatsHandler) HandleOverview(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleUserStats godoc
//
//	@Summary		Per-member sponsor statistics
//	@Tags			stats
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	[]domain.UserStats
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/stats/users [get]
func (h *StatsHandler) HandleUserStats(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	stats, err := h.svc.PerUser(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
