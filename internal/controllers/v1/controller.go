package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/templates"
	"github.com/ledgerbook/backend/internal/types"
)

// Controller holds what the v1 handlers share.
type Controller struct {
	Templates *templates.Reconciler
	Issuer    auth.Issuer

	// Locale is used for month names when the request does not ask for one
	Locale string
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", Get)
		r.OPTIONS("", Options)
	}

	co.RegisterUserRoutes(r)

	owner := co.Issuer.RequireOwner("owner")

	r.OPTIONS("/financial-summary/:owner", httputil.OptionsGet)
	r.GET("/financial-summary/:owner", owner, co.GetFinancialSummary)

	r.OPTIONS("/financial-balance/:owner", httputil.OptionsGet)
	r.GET("/financial-balance/:owner", owner, co.GetFinancialBalance)

	r.OPTIONS("/reports/:owner", httputil.OptionsGet)
	r.GET("/reports/:owner", co.Issuer.RequireOwnerFunc("owner", reportError), co.GetReport)

	for _, category := range types.Categories {
		monthly := "/monthly-" + category.Slug() + "/:owner"
		r.OPTIONS(monthly, httputil.OptionsGet)
		r.GET(monthly, owner, co.GetMonthly(category))

		list := "/" + category.Slug() + "-list/:owner"
		r.OPTIONS(list, httputil.OptionsGetPostDelete)
		r.GET(list, owner, co.GetTemplate(category))
		r.POST(list, owner, co.UpdateTemplate(category))
		r.DELETE(list, owner, co.DeleteTemplateItem(category))

		entries := "/" + category.Collection() + "/:owner"
		r.OPTIONS(entries, httputil.OptionsGetPost)
		r.GET(entries, owner, co.GetEntries(category))
		r.POST(entries, owner, co.CreateEntry(category))
	}
}
