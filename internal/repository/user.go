package repository

import (
	"context"
	"fmt"

	"github.com/VicMent/kermisfuif-sponsor-api/internal/domain"
	"github.com/VicMent/kermisfuif-sponsor-api/internal/repository/dao"
)

var (
	ErrUserNotFound       = dao.ErrUserNotFound
	ErrUserUsernameExists = dao.ErrUserUsernameExists
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	Update(ctx context.Context, id string, changes map[string]any) error
	DeleteWithAssignments(ctx context.Context, id string) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Password:    user.Password,
		Role:        string(user.Role),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserUpdate) error {
	changes := map[string]any{}
	if patch.Username != nil {
		changes["username"] = *patch.Username
	}
	if patch.DisplayName != nil {
		changes["display_name"] = *patch.DisplayName
	}
	if patch.Password != nil {
		changes["password"] = *patch.Password
	}
	if patch.Role != nil {
		changes["role"] = string(*patch.Role)
	}

	if len(changes) == 0 {
		_, err := r.dao.FindByID(ctx, id)
		return err
	}

	if err := r.dao.Update(ctx, id, changes); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.DeleteWithAssignments(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteWithAssignments -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Password:    u.Password,
		Role:        domain.Role(u.Role),
	}
}
