// Package templates keeps the item list each owner uses to prefill the
// entry form of a category.
package templates

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var ErrInvalidIndex = errors.New("the index is out of range for the template")

type key struct {
	owner    uuid.UUID
	category types.Category
}

// Reconciler reads and modifies templates.
//
// Templates are immutable snapshots, every modification stores a new
// snapshot with the next version. Modifications for the same owner and
// category are serialized within the process. Across processes, the
// unique version makes the slower writer fail with
// models.ErrTemplateVersionConflict.
type Reconciler struct {
	store Store

	mu    sync.Mutex
	locks map[key]*keyLock
}

// keyLock is dropped from the map when its last holder or waiter unlocks.
type keyLock struct {
	sync.Mutex
	refs int
}

// New returns a Reconciler using store.
func New(store Store) *Reconciler {
	return &Reconciler{store: store, locks: make(map[key]*keyLock)}
}

func (r *Reconciler) lock(owner uuid.UUID, category types.Category) func() {
	k := key{owner, category}

	r.mu.Lock()
	l, ok := r.locks[k]
	if !ok {
		l = &keyLock{}
		r.locks[k] = l
	}
	l.refs++
	r.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		r.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, k)
		}
		r.mu.Unlock()
	}
}

// GetLatest returns the latest template. If the owner has none yet,
// the defaults of the category are stored and returned.
//
// Amounts and notes are always blanked.
func (r *Reconciler) GetLatest(ctx context.Context, owner uuid.UUID, category types.Category) (models.Template, error) {
	defer r.lock(owner, category)()

	t, err := r.latest(ctx, owner, category)
	if err != nil {
		return models.Template{}, err
	}

	return blank(t), nil
}

// Append stores a new snapshot with item added at the end.
//
// Items with a blank label or without an amount are not added, the latest
// template is returned unchanged. Labels are not de-duplicated.
func (r *Reconciler) Append(ctx context.Context, owner uuid.UUID, category types.Category, item models.Item) (models.Template, error) {
	defer r.lock(owner, category)()

	t, err := r.latest(ctx, owner, category)
	if err != nil {
		return models.Template{}, err
	}

	if item.Blank() || !item.Amount.IsSet() {
		return blank(t), nil
	}

	t, err = r.save(ctx, owner, category, t.Version, append(slices.Clone(t.Items), item))
	if err != nil {
		return models.Template{}, err
	}

	return blank(t), nil
}

// DeleteAt stores a new snapshot without the item at index.
func (r *Reconciler) DeleteAt(ctx context.Context, owner uuid.UUID, category types.Category, index int) (models.Template, error) {
	defer r.lock(owner, category)()

	t, err := r.store.Latest(ctx, owner, category)
	if err != nil {
		return models.Template{}, err
	}

	if index < 0 || index >= len(t.Items) {
		return models.Template{}, fmt.Errorf("%w: %d is not between 0 and %d", ErrInvalidIndex, index, len(t.Items)-1)
	}

	t, err = r.save(ctx, owner, category, t.Version, slices.Delete(slices.Clone(t.Items), index, index+1))
	if err != nil {
		return models.Template{}, err
	}

	return blank(t), nil
}

// Replace stores a new snapshot containing exactly items.
func (r *Reconciler) Replace(ctx context.Context, owner uuid.UUID, category types.Category, items []models.Item) (models.Template, error) {
	defer r.lock(owner, category)()

	var version uint
	t, err := r.store.Latest(ctx, owner, category)
	if err == nil {
		version = t.Version
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Template{}, err
	}

	if items == nil {
		items = make([]models.Item, 0)
	}

	t, err = r.save(ctx, owner, category, version, items)
	if err != nil {
		return models.Template{}, err
	}

	return blank(t), nil
}

// latest returns the stored latest snapshot, seeding the defaults if
// there is none. The caller must hold the lock for owner and category.
func (r *Reconciler) latest(ctx context.Context, owner uuid.UUID, category types.Category) (models.Template, error) {
	t, err := r.store.Latest(ctx, owner, category)
	if err == nil {
		return t, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Template{}, err
	}

	log.Debug().Str("owner", owner.String()).Str("category", string(category)).Msg("seeding default template")

	t, err = r.save(ctx, owner, category, 0, Defaults(category))

	// Another process seeded first, use its snapshot
	if errors.Is(err, models.ErrTemplateVersionConflict) {
		return r.store.Latest(ctx, owner, category)
	}

	return t, err
}

func (r *Reconciler) save(ctx context.Context, owner uuid.UUID, category types.Category, previous uint, items []models.Item) (models.Template, error) {
	t := models.Template{
		OwnerID:  owner,
		Category: category,
		Version:  previous + 1,
		Items:    items,
	}

	err := r.store.Create(ctx, &t)
	if err != nil {
		return models.Template{}, err
	}

	return t, nil
}

// blank returns a copy of t with all amounts and notes removed.
func blank(t models.Template) models.Template {
	items := make([]models.Item, 0, len(t.Items))
	for _, i := range t.Items {
		items = append(items, models.Item{Label: i.Label})
	}

	t.Items = items
	return t
}
