package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"golang.org/x/sync/errgroup"
)

// EntryEditable is the body for saving an entry.
type EntryEditable struct {
	Date  types.Date    `json:"date" swaggertype:"string" example:"2024-03-01"` // Date of the entry
	Items []models.Item `json:"items"`                                          // Items of the entry
}

type EntryResponse struct {
	Error *string       `json:"error" example:"the date of the entry must be set"` // The error, if any occurred
	Data  *models.Entry `json:"data"`                                              // Data for the entry
}

type EntryListResponse struct {
	Error *string        `json:"error" example:"there is no entry matching your query"` // The error, if any occurred
	Data  []models.Entry `json:"data"`                                                  // List of entries
}

// loadEntries loads the entries of all categories concurrently.
//
// The result is ordered by category first, then by date.
func loadEntries(ctx context.Context, owner uuid.UUID, year int, categories ...types.Category) ([]models.Entry, error) {
	loaded := make([][]models.Entry, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			entries, err := models.Entries(ctx, models.DB, owner, category, year)
			if err != nil {
				return err
			}

			loaded[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0)
	for _, l := range loaded {
		entries = append(entries, l...)
	}

	return entries, nil
}

// @Summary		Get entries
// @Description	Returns the entries of a category, ordered by date
// @Tags			Entries
// @Produce		json
// @Success		200		{object}	EntryListResponse
// @Failure		400		{object}	EntryListResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	EntryListResponse
// @Param			owner	path		string	true	"ID of the owner"
// @Param			year	query		int		false	"Only entries of this year"
// @Router			/v1/incomes/{owner} [get]
// @Router			/v1/expenses/{owner} [get]
// @Router			/v1/savings/{owner} [get]
func (co Controller) GetEntries(category types.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query QueryYear
		if err := c.ShouldBindQuery(&query); err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, EntryListResponse{Error: &s})
			return
		}

		owner, err := auth.Owner(c)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EntryListResponse{Error: &s})
			return
		}

		entries, err := models.Entries(c.Request.Context(), models.DB, owner, category, query.Year)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EntryListResponse{Error: &s})
			return
		}

		c.JSON(http.StatusOK, EntryListResponse{Data: entries})
	}
}

// @Summary		Save entry
// @Description	Saves a dated entry. Saving the same date twice creates two entries.
// @Tags			Entries
// @Produce		json
// @Success		201		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	EntryResponse
// @Param			owner	path		string			true	"ID of the owner"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/incomes/{owner} [post]
// @Router			/v1/expenses/{owner} [post]
// @Router			/v1/savings/{owner} [post]
func (co Controller) CreateEntry(category types.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable EntryEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EntryResponse{Error: &s})
			return
		}

		if editable.Date.IsZero() {
			s := errDateMissing.Error()
			c.JSON(http.StatusBadRequest, EntryResponse{Error: &s})
			return
		}

		owner, err := auth.Owner(c)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EntryResponse{Error: &s})
			return
		}

		if editable.Items == nil {
			editable.Items = make([]models.Item, 0)
		}

		entry := models.Entry{
			OwnerID:  owner,
			Category: category,
			Date:     editable.Date,
			Items:    editable.Items,
		}

		err = models.DB.WithContext(c.Request.Context()).Create(&entry).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EntryResponse{Error: &s})
			return
		}

		c.JSON(http.StatusCreated, EntryResponse{Data: &entry})
	}
}
