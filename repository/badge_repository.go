package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jgrivera/fruition/models"
	"gorm.io/gorm"
)

var ErrBadgeNotFound = errors.New("badge not found")

// BadgeRepository owns the authoritative copy of every badge.
//
// Get and Update report a missing id with ErrBadgeNotFound. Delete reports it
// through its bool result instead. Name validation is the caller's job.
type BadgeRepository interface {
	Create(ctx context.Context, name string) (*models.Badge, error)
	List(ctx context.Context) ([]models.Badge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Badge, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*models.Badge, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *badgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) Create(ctx context.Context, name string) (*models.Badge, error) {
	badge := &models.Badge{Name: name}
	if err := r.db.WithContext(ctx).Create(badge).Error; err != nil {
		return nil, fmt.Errorf("create badge: %w", err)
	}
	return badge, nil
}

func (r *badgeRepository) List(ctx context.Context) ([]models.Badge, error) {
	result := []models.Badge{}
	// ids are time-ordered, see models.NewBadgeID
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&result).Error; err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return result, nil
}

func (r *badgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Badge, error) {
	return r.take(r.db.WithContext(ctx), id)
}

func (r *badgeRepository) Update(ctx context.Context, id uuid.UUID, name string) (*models.Badge, error) {
	var badge *models.Badge
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		badge, err = r.take(tx, id)
		if err != nil {
			return err
		}

		badge.Name = name
		return tx.Save(badge).Error
	})
	if err != nil {
		if errors.Is(err, ErrBadgeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update badge %s: %w", id, err)
	}
	return badge, nil
}

func (r *badgeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Badge{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("delete badge %s: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *badgeRepository) take(tx *gorm.DB, id uuid.UUID) (*models.Badge, error) {
	badge := &models.Badge{}
	if err := tx.Where("id = ?", id).Take(badge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadgeNotFound
		}
		return nil, fmt.Errorf("get badge %s: %w", id, err)
	}
	return badge, nil
}
