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

type BundleService interface {
	CreateBundle(ctx context.Context, bundle domain.Bundle) (domain.Bundle, error)
	GetBundle(ctx context.Context, id string) (domain.Bundle, error)
	ListBundles(ctx context.Context) ([]domain.Bundle, error)
	UpdateBundle(ctx context.Context, id string, patch domain.BundleUpdate) (domain.Bundle, error)
	DeleteBundle(ctx context.Context, id string) error
}

type BundleHandler struct {
	svc     BundleService
	userSvc currentUserService
}

func NewBundleHandler(svc BundleService, userSvc currentUserService) *BundleHandler {
	return &BundleHandler{
		svc:     svc,
		userSvc: userSvc,
	}
}

// HandleListBundles godoc
//
//	@Summary		List all sponsor bundles
//	@Tags			bundles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	[]domain.Bundle
//	@Failure		401	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/bundles [get]
func (h *BundleHandler) HandleListBundles(ctx *gin.Context) {
	bundles, err := h.svc.ListBundles(ctx.Request.Context())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bundles)
}

// HandleGetBundle godoc
//
//	@Summary		Get a bundle by ID
//	@Tags			bundles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			bundleID	path		string	true	"bundle ID"
//	@Success		200			{object}	domain.Bundle
//	@Failure		401			{object}	response.Err
//	@Failure		404			{object}	response.Err
//	@Failure		500			{object}	response.Err
//	@Router			/bundles/{bundleID} [get]
func (h *BundleHandler) HandleGetBundle(ctx *gin.Context) {
	bundleID := ctx.Param("bundleID")

	bundle, err := h.svc.GetBundle(ctx.Request.Context(), bundleID)
	if err != nil {
		if errors.Is(err, service.ErrBundleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("bundle", "ID", bundleID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bundle)
}

// HandleCreateBundle godoc
//
//	@Summary		Create a bundle
//	@Tags			bundles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.CreateBundleRequest	true	"bundle to create"
//	@Success		201		{object}	domain.Bundle
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		500		{object}	response.Err
//	@Router			/bundles [post]
func (h *BundleHandler) HandleCreateBundle(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.CreateBundleRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateBundle(ctx.Request.Context(), req.ToBundle())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateBundle godoc
//
//	@Summary		Update a bundle
//	@Tags			bundles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			bundleID	path		string						true	"bundle ID"
//	@Param			request		body		request.UpdateBundleRequest	true	"fields to update"
//	@Success		200			{object}	domain.Bundle
//	@Failure		400			{object}	response.Err
//	@Failure		401			{object}	response.Err
//	@Failure		403			{object}	response.Err
//	@Failure		404			{object}	response.Err
//	@Failure		500			{object}	response.Err
//	@Router			/bundles/{bundleID} [patch]
func (h *BundleHandler) HandleUpdateBundle(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	req := request.UpdateBundleRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bundleID := ctx.Param("bundleID")
	updated, err := h.svc.UpdateBundle(ctx.Request.Context(), bundleID, req.ToUpdate())
	if err != nil {
		if errors.Is(err, service.ErrBundleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("bundle", "ID", bundleID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteBundle godoc
//
//	@Summary		Delete a bundle
//	@Tags			bundles
//	@Security		BearerAuth
//	@Param			bundleID	path	string	true	"bundle ID"
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Failure		500	{object}	response.Err
//	@Router			/bundles/{bundleID} [delete]
func (h *BundleHandler) HandleDeleteBundle(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.userSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if respErr := requireAdmin(caller); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	bundleID := ctx.Param("bundleID")
	if err := h.svc.DeleteBundle(ctx.Request.Context(), bundleID); err != nil {
		if errors.Is(err, service.ErrBundleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("bundle", "ID", bundleID))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
