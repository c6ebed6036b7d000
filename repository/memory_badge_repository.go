package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/jgrivera/fruition/models"
)

const (
	badgeTable = "badge"
	idIndex    = "id"
)

// badgeRecord is the row stored in memdb. memdb indexes need string fields.
type badgeRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *badgeRecord) toModel() (*models.Badge, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("stored badge id %q: %w", r.ID, err)
	}
	return &models.Badge{
		ID:        id,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func badgeSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			badgeTable: {
				Name: badgeTable,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

type memoryBadgeRepository struct {
	db *memdb.MemDB
}

// NewMemoryBadgeRepository returns a process-local store. Records are lost on exit.
func NewMemoryBadgeRepository() (*memoryBadgeRepository, error) {
	db, err := memdb.NewMemDB(badgeSchema())
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &memoryBadgeRepository{db: db}, nil
}

func (r *memoryBadgeRepository) Create(_ context.Context, name string) (*models.Badge, error) {
	id, err := models.NewBadgeID()
	if err != nil {
		return nil, fmt.Errorf("create badge: %w", err)
	}

	now := time.Now()
	record := &badgeRecord{ID: id.String(), Name: name, CreatedAt: now, UpdatedAt: now}

	txn := r.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert(badgeTable, record); err != nil {
		return nil, fmt.Errorf("create badge: %w", err)
	}
	txn.Commit()

	return record.toModel()
}

func (r *memoryBadgeRepository) List(_ context.Context) ([]models.Badge, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	// The id index iterates in lexical order, which for time-ordered ids is creation order.
	it, err := txn.Get(badgeTable, idIndex)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	result := []models.Badge{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		badge, err := obj.(*badgeRecord).toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, *badge)
	}
	return result, nil
}

func (r *memoryBadgeRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Badge, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	record, err := r.first(txn, id)
	if err != nil {
		return nil, err
	}
	return record.toModel()
}

func (r *memoryBadgeRepository) Update(_ context.Context, id uuid.UUID, name string) (*models.Badge, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := r.first(txn, id)
	if err != nil {
		return nil, err
	}

	// memdb objects must not be mutated in place.
	updated := *existing
	updated.Name = name
	updated.UpdatedAt = time.Now()
	if err := txn.Insert(badgeTable, &updated); err != nil {
		return nil, fmt.Errorf("update badge %s: %w", id, err)
	}
	txn.Commit()

	return updated.toModel()
}

func (r *memoryBadgeRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := r.first(txn, id)
	if errors.Is(err, ErrBadgeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := txn.Delete(badgeTable, existing); err != nil {
		return false, fmt.Errorf("delete badge %s: %w", id, err)
	}
	txn.Commit()
	return true, nil
}

func (r *memoryBadgeRepository) first(txn *memdb.Txn, id uuid.UUID) (*badgeRecord, error) {
	raw, err := txn.First(badgeTable, idIndex, id.String())
	if err != nil {
		return nil, fmt.Errorf("get badge %s: %w", id, err)
	}
	if raw == nil {
		return nil, ErrBadgeNotFound
	}
	return raw.(*badgeRecord), nil
}
