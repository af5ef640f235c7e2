package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type HealthResponse struct {
	Error *string `json:"error" example:"The database cannot be accessed"` // The error, if any occurred
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			Health
// @Produce		json
// @Success		204
// @Failure		500	{object}	HealthResponse
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Err(err).Msg("healthz")
		s := "The database cannot be accessed"
		c.JSON(http.StatusInternalServerError, HealthResponse{Error: &s})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Health
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
