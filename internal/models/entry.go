package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/types"
	"gorm.io/gorm"
)

// Entry is one dated record of income, expense or savings.
//
// Entries are only ever created, saving the same date twice creates
// two entries.
type Entry struct {
	DefaultModel
	OwnerID  uuid.UUID      `json:"owner" gorm:"index:idx_entries_owner_category" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`
	Category types.Category `json:"category" gorm:"index:idx_entries_owner_category" example:"income"`
	Date     types.Date     `json:"date" swaggertype:"string" example:"2024-03-01"`
	Items    []Item         `json:"items" gorm:"serializer:json;type:text"`
}

// Entries returns the owner's entries in a category ordered by date.
//
// If year is 0, entries of all years are returned.
func Entries(ctx context.Context, db *gorm.DB, owner uuid.UUID, category types.Category, year int) ([]Entry, error) {
	q := db.
		WithContext(ctx).
		Where(&Entry{OwnerID: owner, Category: category}).
		Order("entries.date ASC, entries.created_at ASC")

	if year != 0 {
		q = q.Where("entries.date >= ? AND entries.date < ?", types.NewDate(year, 1, 1), types.NewDate(year+1, 1, 1))
	}

	entries := make([]Entry, 0)
	err := q.Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
