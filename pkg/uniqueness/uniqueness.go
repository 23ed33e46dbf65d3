package uniqueness

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Collation controls how values are compared against stored keys.
// Recipe titles match exactly while category and ingredient names
// match case-insensitively, so the policy is configured per entity.
type Collation int

const (
	CollationExact Collation = iota
	CollationFoldCase
)

// Key names the table column a value must be unique within.
type Key struct {
	Model     any
	Column    string
	Collation Collation
}

type (
	Validator interface {
		IsTaken(ctx context.Context, key Key, value string) (bool, error)
		IsTakenExcluding(ctx context.Context, key Key, value string, excludeID uint) (bool, error)
	}

	validator struct {
		db *gorm.DB
	}
)

func NewValidator(db *gorm.DB) Validator {
	return &validator{db: db}
}

func (v *validator) IsTaken(ctx context.Context, key Key, value string) (bool, error) {
	return v.count(ctx, key, value, 0)
}

func (v *validator) IsTakenExcluding(ctx context.Context, key Key, value string, excludeID uint) (bool, error) {
	return v.count(ctx, key, value, excludeID)
}

func (v *validator) count(ctx context.Context, key Key, value string, excludeID uint) (bool, error) {
	query := v.db.WithContext(ctx).Model(key.Model)

	switch key.Collation {
	case CollationFoldCase:
		query = query.Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", key.Column), value)
	default:
		query = query.Where(fmt.Sprintf("%s = ?", key.Column), value)
	}

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
