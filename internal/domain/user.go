package domain

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"-"`
	Role        Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserUpdate is a merge-patch: present fields overwrite, absent fields are
// preserved.
type UserUpdate struct {
	Username    *string
	DisplayName *string
	Password    *string
	Role        *Role
}
