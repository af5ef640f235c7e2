package models

import (
	"errors"
)

var (
	ErrGeneral                 = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound        = errors.New("there is no")
	ErrTemplateVersionConflict = errors.New("the template was changed by another request, please reload it and try again")
	ErrEmailNotUnique          = errors.New("an account with this e-mail address already exists")
)
