package templates

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

// Store persists template snapshots.
//
// Latest must return an error wrapping models.ErrResourceNotFound if
// no snapshot exists. Create must fail with
// models.ErrTemplateVersionConflict if the version is already taken.
type Store interface {
	Latest(ctx context.Context, owner uuid.UUID, category types.Category) (models.Template, error)
	Create(ctx context.Context, template *models.Template) error
}

// DatabaseStore keeps snapshots in models.DB.
type DatabaseStore struct{}

func (DatabaseStore) Latest(ctx context.Context, owner uuid.UUID, category types.Category) (models.Template, error) {
	return models.LatestTemplate(ctx, models.DB, owner, category)
}

func (DatabaseStore) Create(ctx context.Context, template *models.Template) error {
	return models.DB.WithContext(ctx).Create(template).Error
}
