package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1/request"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1/response"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/pkg/jwthelper"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.User, error)
}

type AuthHandler struct {
	svc        AuthService
	signingKey []byte
}

func NewAuthHandler(svc AuthService, signingKey string) *AuthHandler {
	return &AuthHandler{
		svc:        svc,
		signingKey: []byte(signingKey),
	}
}

// HandleLogin godoc
//
//	@Summary		Authenticate a user
//	@Tags			auth
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"credentials"
//	@Success		200		{object}	response.LoginResponse
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		500		{object}	response.Err
//	@Router			/auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.signingKey, user.ID, ctx.Request.UserAgent())
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleLogout godoc
//
//	@Summary		Log out the current user
//	@Tags			auth
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	response.Err
//	@Router			/auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	// Tokens are stateless, the client simply drops it.
	ctx.Status(http.StatusNoContent)
}
