package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
)

// Lookahead groups need regexp2; the stdlib engine has none.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordRegex      = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain a letter and a number")
)

func validPassword(password string) bool {
	ok, err := passwordRegex.MatchString(password)
	return err == nil && ok
}

type CreateUserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.DisplayName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In("admin", "member")),
	)
	if err != nil {
		return err
	}

	if !validPassword(req.Password) {
		return errInvalidPassword
	}

	return nil
}

func (req *CreateUserRequest) ToUser() domain.User {
	return domain.User{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
	}
}

type UpdateUserRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
}

func (req *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Length(2, 50)),
		validation.Field(&req.DisplayName, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.In("admin", "member")),
	)
	if err != nil {
		return err
	}

	if req.Password != nil && !validPassword(*req.Password) {
		return errInvalidPassword
	}

	return nil
}

func (req *UpdateUserRequest) ToUpdate() domain.UserUpdate {
	patch := domain.UserUpdate{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		patch.Role = &role
	}

	return patch
}
