package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
)

// RegisterUserRoutes registers the routes for sign-up, sign-in and user
// lookup with the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/sign-up", httputil.OptionsPost)
	r.POST("/sign-up", co.SignUp)

	r.OPTIONS("/sign-in", httputil.OptionsPost)
	r.POST("/sign-in", co.SignIn)

	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.Logout)

	r.OPTIONS("/verify-auth", httputil.OptionsGet)
	r.GET("/verify-auth", co.VerifyAuth)

	r.OPTIONS("/users/:owner", httputil.OptionsGet)
	r.GET("/users/:owner", co.Issuer.RequireOwner("owner"), co.GetUser)
}

// SignUpEditable is the body to create a user with.
type SignUpEditable struct {
	Name     string `json:"name" example:"Somchai"`
	Email    string `json:"email" example:"somchai@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// SignInEditable is the body to sign in with.
type SignInEditable struct {
	Email    string `json:"email" example:"somchai@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type UserResponse struct {
	Error *string      `json:"error" example:"there is no user matching your query"` // The error, if any occurred
	Data  *models.User `json:"data"`                                                 // Data for the user
}

// Session is an access token and the user it was issued to.
type Session struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Access token, send it as "Authorization: Bearer <token>"
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-08T10:00:00Z"`                // Time the token expires
	UserID    uuid.UUID `json:"userId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"`   // ID of the user, use it as owner
	Name      string    `json:"name" example:"Somchai"`                                  // Name of the user
}

type SessionResponse struct {
	Error *string  `json:"error" example:"invalid email or password"` // The error, if any occurred
	Data  *Session `json:"data"`                                      // The session
}

// secure reports if cookies should only be sent over HTTPS.
func secure(c *gin.Context) bool {
	return strings.HasPrefix(c.GetString(string(models.DBContextURL)), "https://")
}

// @Summary		Sign up
// @Description	Creates a user
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		409		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		SignUpEditable	true	"User"
// @Router			/v1/sign-up [post]
func (co Controller) SignUp(c *gin.Context) {
	var editable SignUpEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	if strings.TrimSpace(editable.Name) == "" || !strings.Contains(editable.Email, "@") {
		s := errNameOrEmailEmpty.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &s})
		return
	}

	hash, err := auth.HashPassword(editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(editable.Name),
		Email:        editable.Email,
		PasswordHash: hash,
	}

	err = models.DB.WithContext(c.Request.Context()).Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		Sign in
// @Description	Returns an access token and sets it as cookie
// @Tags			Users
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		SignInEditable	true	"Credentials"
// @Router			/v1/sign-in [post]
func (co Controller) SignIn(c *gin.Context) {
	var editable SignInEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	email := strings.ToLower(strings.TrimSpace(editable.Email))

	var user models.User
	if email == "" {
		err = auth.ErrInvalidCredentials
	} else {
		err = models.DB.
			WithContext(c.Request.Context()).
			Where(&models.User{Email: email}).
			First(&user).Error
	}

	// Unknown addresses get the same answer as wrong passwords
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrInvalidCredentials
	}

	if err == nil {
		err = auth.CheckPassword(user.PasswordHash, editable.Password)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{Error: &s})
		return
	}

	token, expires, err := co.Issuer.Issue(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{Error: &s})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(co.Issuer.TTL().Seconds()), "/", "", secure(c), true)

	c.JSON(http.StatusOK, SessionResponse{Data: &Session{
		Token:     token,
		ExpiresAt: expires,
		UserID:    user.ID,
		Name:      user.Name,
	}})
}

// @Summary		Logout
// @Description	Removes the token cookie. Tokens are stateless, a copy of the token stays valid until it expires after AUTH_TOKEN_TTL
// @Tags			Users
// @Success		204
// @Router			/v1/logout [post]
func (co Controller) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", secure(c), true)
	c.Status(http.StatusNoContent)
}

// @Summary		Verify authentication
// @Description	Returns the user the request is authenticated as
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/verify-auth [get]
func (co Controller) VerifyAuth(c *gin.Context) {
	id, err := co.Issuer.Authenticate(c)
	if err != nil {
		s := auth.ErrUnauthenticated.Error()
		c.JSON(http.StatusUnauthorized, UserResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.WithContext(c.Request.Context()).First(&user, id).Error

	// The user has been removed since the token was issued
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrUnauthenticated
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}

// @Summary		Get user
// @Description	Returns the user, e.g. to show the name
// @Tags			Users
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			owner	path		string	true	"ID of the user"
// @Router			/v1/users/{owner} [get]
func (co Controller) GetUser(c *gin.Context) {
	owner, err := auth.Owner(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.WithContext(c.Request.Context()).First(&user, owner).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &user})
}
