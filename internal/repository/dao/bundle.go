package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBundleNotFound = errors.New("bundle not found")

type Bundle struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Price       float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

type BundleDAO struct {
	db *gorm.DB
}

func NewBundleDAO(db *gorm.DB) *BundleDAO {
	return &BundleDAO{
		db: db,
	}
}

func (d *BundleDAO) Insert(ctx context.Context, bundle Bundle) (Bundle, error) {
	if bundle.ID == "" {
		bundle.ID = uuid.NewString()
	}
	if bundle.CreatedAt.IsZero() {
		bundle.CreatedAt = time.Now()
	}

	result := d.db.WithContext(ctx).Create(&bundle)
	if result.Error != nil {
		return Bundle{}, result.Error
	}

	return bundle, nil
}

func (d *BundleDAO) FindByID(ctx context.Context, id string) (Bundle, error) {
	var bundle Bundle

	result := d.db.WithContext(ctx).First(&bundle, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Bundle{}, ErrBundleNotFound
		}

		return Bundle{}, result.Error
	}

	return bundle, nil
}

func (d *BundleDAO) FindAll(ctx context.Context) ([]Bundle, error) {
	var bundles []Bundle

	result := d.db.WithContext(ctx).Order("price").Find(&bundles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bundles, nil
}

func (d *BundleDAO) Update(ctx context.Context, id string, changes map[string]any) error {
	result := d.db.WithContext(ctx).Model(&Bundle{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBundleNotFound
	}

	return nil
}

// Delete does not touch assignments: their bundle_names keep whatever name
// the bundle had when it was recorded.
func (d *BundleDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Bundle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBundleNotFound
	}

	return nil
}
