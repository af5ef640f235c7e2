package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	FinancialSummary string `json:"financialSummary" example:"https://example.com/api/v1/financial-summary/{owner}"` // Annual summary per category
	FinancialBalance string `json:"financialBalance" example:"https://example.com/api/v1/financial-balance/{owner}"` // Totals and balance
	Reports          string `json:"reports" example:"https://example.com/api/v1/reports/{owner}"`                    // Label totals over all time
	SignUp           string `json:"signUp" example:"https://example.com/api/v1/sign-up"`                             // Create a user
	SignIn           string `json:"signIn" example:"https://example.com/api/v1/sign-in"`                             // Get an access token
	Logout           string `json:"logout" example:"https://example.com/api/v1/logout"`                              // Remove the token cookie
	VerifyAuth       string `json:"verifyAuth" example:"https://example.com/api/v1/verify-auth"`                     // Check the access token
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			FinancialSummary: url + "/financial-summary/{owner}",
			FinancialBalance: url + "/financial-balance/{owner}",
			Reports:          url + "/reports/{owner}",
			SignUp:           url + "/sign-up",
			SignIn:           url + "/sign-in",
			Logout:           url + "/logout",
			VerifyAuth:       url + "/verify-auth",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
