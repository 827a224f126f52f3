package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type Assignment struct {
	ID            string `gorm:"primaryKey"`
	SponsorID     string `gorm:"not null;index"`
	UserID        string `gorm:"index"`
	Status        string `gorm:"not null"`
	AssignedAt    time.Time
	AmountPledged float64 `gorm:"not null"`
	AmountActual  *float64
	BundleNames   []string `gorm:"serializer:json"`
	LogoReady     bool
	CashReady     bool
	TicketsReady  bool
	Notes         string
	CompletedAt   *time.Time
}

type AssignmentDAO struct {
	db *gorm.DB
}

func NewAssignmentDAO(db *gorm.DB) *AssignmentDAO {
	return &AssignmentDAO{
		db: db,
	}
}

func (d *AssignmentDAO) Insert(ctx context.Context, assignment Assignment) (Assignment, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	if assignment.AssignedAt.IsZero() {
		assignment.AssignedAt = time.Now()
	}

	result := d.db.WithContext(ctx).Create(&assignment)
	if result.Error != nil {
		return Assignment{}, result.Error
	}

	return assignment, nil
}

func (d *AssignmentDAO) FindByID(ctx context.Context, id string) (Assignment, error) {
	var assignment Assignment

	result := d.db.WithContext(ctx).First(&assignment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Assignment{}, ErrAssignmentNotFound
		}

		return Assignment{}, result.Error
	}

	return assignment, nil
}

func (d *AssignmentDAO) FindAll(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment

	result := d.db.WithContext(ctx).Order("assigned_at").Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}

func (d *AssignmentDAO) FindBySponsorID(ctx context.Context, sponsorID string) ([]Assignment, error) {
	var assignments []Assignment

	result := d.db.WithContext(ctx).Where("sponsor_id = ?", sponsorID).Order("assigned_at").Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}

func (d *AssignmentDAO) FindByUserID(ctx context.Context, userID string) ([]Assignment, error) {
	var assignments []Assignment

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("assigned_at").Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assignments, nil
}

func (d *AssignmentDAO) Update(ctx context.Context, id string, changes map[string]any) error {
	result := d.db.WithContext(ctx).Model(&Assignment{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
