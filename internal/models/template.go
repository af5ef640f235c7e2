package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/types"
	"gorm.io/gorm"
)

// Template is a snapshot of the item list an owner uses to prefill the
// entry form of a category.
//
// Snapshots are never changed. Every modification creates a new one with
// the next version, reads only ever look at the highest version.
type Template struct {
	DefaultModel
	OwnerID  uuid.UUID      `json:"owner" gorm:"uniqueIndex:idx_templates_version"`
	Category types.Category `json:"category" gorm:"uniqueIndex:idx_templates_version"`
	Version  uint           `json:"version" gorm:"uniqueIndex:idx_templates_version"`
	Items    []Item         `json:"items" gorm:"serializer:json;type:text"`
}

// LatestTemplate returns the snapshot with the highest version for the
// owner and category.
func LatestTemplate(ctx context.Context, db *gorm.DB, owner uuid.UUID, category types.Category) (Template, error) {
	var t Template
	err := db.
		WithContext(ctx).
		Where(&Template{OwnerID: owner, Category: category}).
		Order("templates.version DESC").
		First(&t).Error

	return t, err
}
