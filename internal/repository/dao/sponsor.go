package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSponsorNotFound = errors.New("sponsor not found")

type Sponsor struct {
	ID            string `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Description   string
	TargetAmount  float64   `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

type SponsorDAO struct {
	db *gorm.DB
}

func NewSponsorDAO(db *gorm.DB) *SponsorDAO {
	return &SponsorDAO{
		db: db,
	}
}

func (d *SponsorDAO) Insert(ctx context.Context, sponsor Sponsor) (Sponsor, error) {
	if sponsor.ID == "" {
		sponsor.ID = uuid.NewString()
	}
	if sponsor.CreatedAt.IsZero() {
		sponsor.CreatedAt = time.Now()
	}

	result := d.db.WithContext(ctx).Create(&sponsor)
	if result.Error != nil {
		return Sponsor{}, result.Error
	}

	return sponsor, nil
}

func (d *SponsorDAO) FindByID(ctx context.Context, id string) (Sponsor, error) {
	var sponsor Sponsor

	result := d.db.WithContext(ctx).First(&sponsor, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sponsor{}, ErrSponsorNotFound
		}

		return Sponsor{}, result.Error
	}

	return sponsor, nil
}

func (d *SponsorDAO) FindAll(ctx context.Context) ([]Sponsor, error) {
	var sponsors []Sponsor

	result := d.db.WithContext(ctx).Order("created_at").Find(&sponsors)
	if result.Error != nil {
		return nil, result.Error
	}

	return sponsors, nil
}

func (d *SponsorDAO) Update(ctx context.Context, id string, changes map[string]any) error {
	result := d.db.WithContext(ctx).Model(&Sponsor{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSponsorNotFound
	}

	return nil
}

// DeleteWithAssignments removes the sponsor and cascades into every
// assignment that references it.
func (d *SponsorDAO) DeleteWithAssignments(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Sponsor{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSponsorNotFound
		}

		return tx.Where("sponsor_id = ?", id).Delete(&Assignment{}).Error
	})
}
