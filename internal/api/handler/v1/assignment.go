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

type AssignmentService interface {
	GetAssignment(ctx context.Context, id string) (domain.Assignment, error)
	ListAssignments(ctx context.Context) ([]domain.Assignment, error)
	ListAssignmentsForUser(ctx context.Context, userID string) ([]domain.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentUpdate) (domain.Assignment, error)
	Start(ctx context.Context, id string) (domain.Assignment, error)
	Complete(ctx context.Context, id string, params service.CompleteParams) (domain.Assignment, error)
	Unassign(ctx context.Context, id string) (domain.Assignment, error)
	ResetAll(ctx context.Context) (int, error)
}

type AssignmentHandler struct {
	svc     AssignmentService
	userSvc currentUserService
}

func NewAssignmentHandler(svc AssignmentService, userSvc currentUserService) *AssignmentHandler {
	return &AssignmentHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

// Members may only touch assignments that belong to them.
func (h *AssignmentHandler) loadForCaller(ctx *gin.Context, assignmentID string) (domain.User, *response.Err) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		return domain.User{}, respErr
	}

	if caller.IsAdmin() {
		return caller, nil
	}

	assignment, err := h.svc.GetAssignment(ctx.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			return domain.User{}, response.ErrNotFound("assignment", "ID", assignmentID)
		}

		return domain.User{}, response.ErrInternalServerError(err)
	}

	if assignment.UserID != caller.ID {
		return domain.User{}, response.ErrPermissionDenied(errors.New("assignment belongs to another user"))
	}

	return caller, nil
}

// HandleListAssignments godoc
//
//	@Summary		List assignments
//	@Description	Admins see every assignment, members only their own.
//	@Tags			assignments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	[]domain.Assignment
//	@Failure		401	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/assignments [get]
func (h *AssignmentHandler) HandleListAssignments(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var (
		assignments []domain.Assignment
		err         error
	)
	if caller.IsAdmin() {
		assignments, err = h.svc.ListAssignments(ctx.Request.Context())
	} else {
		assignments, err = h.svc.ListAssignmentsForUser(ctx.Request.Context(), caller.ID)
	}
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, assignments)
}

// HandleGetAssignment godoc
//
//	@Summary		Get an assignment by ID
//	@Tags			assignments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			assignmentID	path		string	true	"assignment ID"
//	@Success		200				{object}	domain.Assignment
//	@Failure		401				{object}	response.Err
//	@Failure		403				{object}	response.Err
//	@Failure		404				{object}	response.Err
//	@Failure		500				{object}	response.Err
//	@Router			/assignments/{assignmentID} [get]
func (h *AssignmentHandler) HandleGetAssignment(ctx *gin.Context) {
	assignmentID := ctx.Param("assignmentID")
	if _, respErr := h.loadForCaller(ctx, assignmentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	assignment, err := h.svc.GetAssignment(ctx.Request.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("assignment", "ID", assignmentID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, assignment)
}

// HandleUpdateAssignment godoc
//
//	@Summary		Update an assignment
//	@Tags			assignments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			assignmentID	path		string							true	"assignment ID"
//	@Param			request			body		request.UpdateAssignmentRequest	true	"fields to update"
//	@Success		200				{object}	domain.Assignment
//	@Failure		400				{object}	response.Err
//	@Failure		401				{object}	response.Err
//	@Failure		403				{object}	response.Err
//	@Failure		404				{object}	response.Err
//	@Failure		500				{object}	response.Err
//	@Router			/assignments/{assignmentID} [patch]
func (h *AssignmentHandler) HandleUpdateAssignment(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.UpdateAssignmentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	assignmentID := ctx.Param("assignmentID")
	updated, err := h.svc.UpdateAssignment(ctx.Request.Context(), assignmentID, req.ToUpdate())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("assignment", "ID", assignmentID))
		case errors.Is(err, service.ErrInvalidStatus):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleStartAssignment godoc
//
//	@Summary		Move an assignment to in progress
//	@Tags			assignments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			assignmentID	path		string	true	"assignment ID"
//	@Success		200				{object}	domain.Assignment
//	@Failure		400				{object}	response.Err
//	@Failure		401				{object}	response.Err
//	@Failure		403				{object}	response.Err
//	@Failure		404				{object}	response.Err
//	@Failure		500				{object}	response.Err
//	@Router			/assignments/{assignmentID}/start [post]
func (h *AssignmentHandler) HandleStartAssignment(ctx *gin.Context) {
	assignmentID := ctx.Param("assignmentID")
	if _, respErr := h.loadForCaller(ctx, assignmentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	started, err := h.svc.Start(ctx.Request.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("assignment", "ID", assignmentID))
		case errors.Is(err, service.ErrInvalidStatusTransition):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, started)
}

// HandleCompleteAssignment godoc
//
//	@Summary		Complete an assignment
//	@Tags			assignments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			assignmentID	path		string								true	"assignment ID"
//	@Param			request			body		request.CompleteAssignmentRequest	true	"final amounts and flags"
//	@Success		200				{object}	domain.Assignment
//	@Failure		400				{object}	response.Err
//	@Failure		401				{object}	response.Err
//	@Failure		403				{object}	response.Err
//	@Failure		404				{object}	response.Err
//	@Failure		500				{object}	response.Err
//	@Router			/assignments/{assignmentID}/complete [post]
func (h *AssignmentHandler) HandleCompleteAssignment(ctx *gin.Context) {
	assignmentID := ctx.Param("assignmentID")
	if _, respErr := h.loadForCaller(ctx, assignmentID); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.CompleteAssignmentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	completed, err := h.svc.Complete(ctx.Request.Context(), assignmentID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("assignment", "ID", assignmentID))
		case errors.Is(err, service.ErrInvalidStatusTransition):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, completed)
}

// HandleUnassignAssignment godoc
//
//	@Summary		Reject an assignment and release the sponsor
//	@Tags			assignments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			assignmentID	path		string	true	"assignment ID"
//	@Success		200				{object}	domain.Assignment
//	@Failure		400				{object}	response.Err
//	@Failure		401				{object}	response.Err
//	@Failure		403				{object}	response.Err
//	@Failure		404				{object}	response.Err
//	@Failure		500				{object}	response.Err
//	@Router			/assignments/{assignmentID}/unassign [post]
func (h *AssignmentHandler) HandleUnassignAssignment(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	assignmentID := ctx.Param("assignmentID")
	rejected, err := h.svc.Unassign(ctx.Request.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssignmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("assignment", "ID", assignmentID))
		case errors.Is(err, service.ErrInvalidStatusTransition):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, rejected)
}

// HandleResetAssignments godoc
//
//	@Summary		Reset all assignment progress
//	@Description	Moves every in progress and completed assignment back to assigned.
//	@Tags			assignments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	response.ResetAssignmentsResponse
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/assignments/reset [post]
func (h *AssignmentHandler) HandleResetAssignments(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	count, err := h.svc.ResetAll(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ResetAssignmentsResponse{ResetCount: count})
}
