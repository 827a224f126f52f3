package response

import "github.com/VicMent/kermisfuif-sponsor-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
