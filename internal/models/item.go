package models

import (
	"strings"

	"github.com/ledgerbook/backend/internal/types"
)

// Item is one labeled amount of an entry or a template.
//
// Items with byte-equal labels belong to the same group in all
// summaries. Notes are free text.
type Item struct {
	Label  string       `json:"label" example:"Salary"`
	Amount types.Amount `json:"amount" swaggertype:"number" example:"30000"`
	Note   string       `json:"comment" example:"March payout"`
}

// Blank reports if the label is empty or only whitespace.
func (i Item) Blank() bool {
	return strings.TrimSpace(i.Label) == ""
}
