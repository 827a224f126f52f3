package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1/request"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1/response"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

type SponsorService interface {
	CreateSponsor(ctx context.Context, sponsor domain.Sponsor) (domain.Sponsor, error)
	GetSponsor(ctx context.Context, id string) (domain.Sponsor, error)
	ListSponsors(ctx context.Context, filter service.SponsorFilter) ([]domain.Sponsor, error)
	UpdateSponsor(ctx context.Context, id string, patch domain.SponsorUpdate) (domain.Sponsor, error)
	DeleteSponsor(ctx context.Context, id string) error
}

type SponsorAssignmentService interface {
	Assign(ctx context.Context, sponsorID, userID string, params service.AssignParams) (domain.Assignment, error)
	ActiveForSponsor(ctx context.Context, sponsorID string) (domain.Assignment, error)
}

type SponsorHandler struct {
	svc           SponsorService
	assignmentSvc SponsorAssignmentService
	userSvc       currentUserService
}

func NewSponsorHandler(svc SponsorService, assignmentSvc SponsorAssignmentService, userSvc currentUserService) *SponsorHandler {
	return &SponsorHandler{
		svc:           svc,
		assignmentSvc: assignmentSvc,
		userSvc:       userSvc,
	}
}

// HandleListSponsors godoc
//
//	@Summary		List sponsors, optionally filtered
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"all, assigned, unassigned, completed or uncompleted"
//	@Param			user_id	query		string	false	"only sponsors actively assigned to this user"
//	@Param			bundle	query		string	false	"only sponsors with this bundle name on an assignment"
//	@Param			search	query		string	false	"case-insensitive match on name, contact person or email"
//	@Success		200		{object}	[]domain.Sponsor
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		500		{object}	response.Err
//	@Router			/sponsors [get]
func (h *SponsorHandler) HandleListSponsors(ctx *gin.Context) {
	filter := service.SponsorFilter{
		Status: ctx.Query("status"),
		UserID: ctx.Query("user_id"),
		Bundle: ctx.Query("bundle"),
		Search: ctx.Query("search"),
	}

	switch filter.Status {
	case "", service.FilterStatusAll, service.FilterStatusAssigned, service.FilterStatusUnassigned,
		service.FilterStatusCompleted, service.FilterStatusUncompleted:
	default:
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("unknown status filter "+filter.Status)))
		return
	}

	sponsors, err := h.svc.ListSponsors(ctx.Request.Context(), filter)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sponsors)
}

// HandleGetSponsor godoc
//
//	@Summary		Get a sponsor by ID
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sponsorID	path		string	true	"sponsor ID"
//	@Success		200			{object}	domain.Sponsor
//	@Failure		401			{object}	response.Err
//	@Failure		404			{object}	response.Err
//	@Failure		500			{object}	response.Err
//	@Router			/sponsors/{sponsorID} [get]
func (h *SponsorHandler) HandleGetSponsor(ctx *gin.Context) {
	sponsorID := ctx.Param("sponsorID")

	sponsor, err := h.svc.GetSponsor(ctx.Request.Context(), sponsorID)
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsor", "ID", sponsorID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sponsor)
}

// HandleCreateSponsor godoc
//
//	@Summary		Create a sponsor
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateSponsorRequest	true	"sponsor to create"
//	@Success		201		{object}	domain.Sponsor
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		500		{object}	response.Err
//	@Router			/sponsors [post]
func (h *SponsorHandler) HandleCreateSponsor(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.CreateSponsorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateSponsor(ctx.Request.Context(), req.ToSponsor())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateSponsor godoc
//
//	@Summary		Update a sponsor
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			sponsorID	path		string							true	"sponsor ID"
//	@Param			request		body		request.UpdateSponsorRequest	true	"fields to update"
//	@Success		200			{object}	domain.Sponsor
//	@Failure		400			{object}	response.Err
//	@Failure		401			{object}	response.Err
//	@Failure		403			{object}	response.Err
//	@Failure		404			{object}	response.Err
//	@Failure		500			{object}	response.Err
//	@Router			/sponsors/{sponsorID} [patch]
func (h *SponsorHandler) HandleUpdateSponsor(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.UpdateSponsorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sponsorID := ctx.Param("sponsorID")
	updated, err := h.svc.UpdateSponsor(ctx.Request.Context(), sponsorID, req.ToUpdate())
	if err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsor", "ID", sponsorID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteSponsor godoc
//
//	@Summary		Delete a sponsor and its assignments
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Param			sponsorID	path	string	true	"sponsor ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/sponsors/{sponsorID} [delete]
func (h *SponsorHandler) HandleDeleteSponsor(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sponsorID := ctx.Param("sponsorID")
	if err := h.svc.DeleteSponsor(ctx.Request.Context(), sponsorID); err != nil {
		if errors.Is(err, service.ErrSponsorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsor", "ID", sponsorID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAssignSponsor godoc
//
//	@Summary		Assign a sponsor to a user
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			sponsorID	path		string						true	"sponsor ID"
//	@Param			request		body		request.AssignSponsorRequest	true	"assignment details"
//	@Success		201			{object}	domain.Assignment
//	@Failure		400			{object}	response.Err
//	@Failure		401			{object}	response.Err
//	@Failure		403			{object}	response.Err
//	@Failure		404			{object}	response.Err
//	@Failure		409			{object}	response.Err
//	@Failure		500			{object}	response.Err
//	@Router			/sponsors/{sponsorID}/assign [post]
func (h *SponsorHandler) HandleAssignSponsor(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.AssignSponsorRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sponsorID := ctx.Param("sponsorID")
	created, err := h.assignmentSvc.Assign(ctx.Request.Context(), sponsorID, req.UserID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSponsorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("sponsor", "ID", sponsorID))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", req.UserID))
		case errors.Is(err, service.ErrSponsorAlreadyAssigned):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetActiveAssignment godoc
//
//	@Summary		Get the active assignment of a sponsor
//	@Tags			sponsors
//	@Security		BearerAuth
//	@Produce		json
//	@Param			sponsorID	path		string	true	"sponsor ID"
//	@Success		200			{object}	domain.Assignment
//	@Failure		401			{object}	response.Err
//	@Failure		404			{object}	response.Err
//	@Failure		500			{object}	response.Err
//	@Router			/sponsors/{sponsorID}/assignment [get]
func (h *SponsorHandler) HandleGetActiveAssignment(ctx *gin.Context) {
	sponsorID := ctx.Param("sponsorID")

	assignment, err := h.assignmentSvc.ActiveForSponsor(ctx.Request.Context(), sponsorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSponsorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("sponsor", "ID", sponsorID))
		case errors.Is(err, service.ErrNoActiveAssignment):
			response.RenderErr(ctx, response.ErrNotFound("active assignment", "sponsor ID", sponsorID))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, assignment)
}
