package aggregate

import (
	"strings"

	"github.com/ledgerbook/backend/internal/models"
)

// LabelTotal is the all-time total of one label with all notes
// that were written for it.
type LabelTotal struct {
	Label   string  `json:"label" example:"Rent"`
	Amount  float64 `json:"amount" example:"15000"`
	Comment string  `json:"comment" example:"Jan, Feb"`
}

// LabelTotalsAllTime sums the items of all entries per label.
//
// Items with a blank label or an amount of zero are skipped. Notes are
// trimmed and de-duplicated, then joined with ", ". Labels that net out to
// zero are left out. Labels are returned in the order they were first seen.
func LabelTotalsAllTime(entries []models.Entry) []LabelTotal {
	sums := newGroups[string]()

	for _, entry := range entries {
		for _, item := range entry.Items {
			if item.Blank() || item.Amount.Decimal().IsZero() {
				continue
			}

			sums.add(item.Label, item.Amount.Decimal()).note(item.Note)
		}
	}

	result := make([]LabelTotal, 0)
	sums.each(func(label string, grp *group) {
		if grp.sum.IsZero() {
			return
		}

		result = append(result, LabelTotal{
			Label:   label,
			Amount:  grp.sum.InexactFloat64(),
			Comment: strings.Join(grp.notes, ", "),
		})
	})

	return result
}
