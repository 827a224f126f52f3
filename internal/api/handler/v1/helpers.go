package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/handler/v1/response"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/api/middleware"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/service"
)

// currentUserService resolves the authenticated user from its token subject.
type currentUserService interface {
	GetUser(ctx context.Context, id string) (domain.User, error)
}

func getUserFromContext(ctx *gin.Context, svc currentUserService) (domain.User, *response.Err) {
	userID := ctx.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing user in request context"))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(fmt.Errorf("unknown user %q", userID))
		}

		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}

func requireAdmin(user domain.User) *response.Err {
	if !user.IsAdmin() {
		return response.ErrPermissionDenied(fmt.Errorf("user %q is not an admin", user.ID))
	}

	return nil
}
