package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

// TemplateResponse is the latest template of a category. Amounts
// and comments are always empty.
type TemplateResponse struct {
	ID        uuid.UUID     `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the snapshot
	CreatedAt time.Time     `json:"createdAt" example:"2024-03-01T10:00:00Z"`          // Time the snapshot was saved
	Version   uint          `json:"version" example:"3"`                               // Version of the snapshot, starting at 1
	Items     []models.Item `json:"items"`                                             // Items to prefill the entry form with
}

// TemplateEditable modifies a template. Exactly one of the fields must be set.
type TemplateEditable struct {
	Items *[]models.Item `json:"items"` // Replaces all items of the template
	Item  *models.Item   `json:"item"`  // Is added at the end of the template
}

// TemplateItemDelete selects the item to remove from a template.
type TemplateItemDelete struct {
	Index *int `json:"index" example:"2"` // Position of the item, starting at 0
}

func newTemplateResponse(t models.Template) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		CreatedAt: t.CreatedAt,
		Version:   t.Version,
		Items:     t.Items,
	}
}

// @Summary		Get template
// @Description	Returns the latest template of a category. If there is none yet, the default labels are saved and returned.
// @Tags			Templates
// @Produce		json
// @Success		200		{object}	TemplateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	path		string	true	"ID of the owner"
// @Router			/v1/income-list/{owner} [get]
// @Router			/v1/expense-list/{owner} [get]
// @Router			/v1/saving-list/{owner} [get]
func (co Controller) GetTemplate(category types.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := auth.Owner(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		t, err := co.Templates.GetLatest(c.Request.Context(), owner, category)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, newTemplateResponse(t))
	}
}

// @Summary		Update template
// @Description	Replaces all items of the template when "items" is sent, adds one item when "item" is sent.
// @Description	Items without a label or an amount are not added.
// @Tags			Templates
// @Produce		json
// @Success		200			{object}	TemplateResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			owner		path		string				true	"ID of the owner"
// @Param			template	body		TemplateEditable	true	"Items"
// @Router			/v1/income-list/{owner} [post]
// @Router			/v1/expense-list/{owner} [post]
// @Router			/v1/saving-list/{owner} [post]
func (co Controller) UpdateTemplate(category types.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable TemplateEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		if (editable.Items == nil) == (editable.Item == nil) {
			c.JSON(http.StatusBadRequest, httpError{Error: errTemplateBody.Error()})
			return
		}

		owner, err := auth.Owner(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		var t models.Template
		if editable.Items != nil {
			t, err = co.Templates.Replace(c.Request.Context(), owner, category, *editable.Items)
		} else {
			t, err = co.Templates.Append(c.Request.Context(), owner, category, *editable.Item)
		}

		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, newTemplateResponse(t))
	}
}

// @Summary		Delete template item
// @Description	Removes the item at the index from the template
// @Tags			Templates
// @Produce		json
// @Success		200		{object}	TemplateResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	path		string				true	"ID of the owner"
// @Param			index	body		TemplateItemDelete	true	"Index"
// @Router			/v1/income-list/{owner} [delete]
// @Router			/v1/expense-list/{owner} [delete]
// @Router			/v1/saving-list/{owner} [delete]
func (co Controller) DeleteTemplateItem(category types.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		var del TemplateItemDelete
		err := httputil.BindData(c, &del)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		if del.Index == nil {
			c.JSON(http.StatusBadRequest, httpError{Error: errIndexMissing.Error()})
			return
		}

		owner, err := auth.Owner(c)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		t, err := co.Templates.DeleteAt(c.Request.Context(), owner, category, *del.Index)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, newTemplateResponse(t))
	}
}
