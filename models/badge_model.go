package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Badge struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBadgeID returns a time-ordered id, so sorting by id keeps creation order.
func NewBadgeID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID != uuid.Nil {
		return nil
	}
	id, err := NewBadgeID()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}
