package types

import (
	"time"

	"golang.org/x/text/language"
)

// MonthNames maps month numbers to display names. Index 0 is unused.
type MonthNames [13]string

var (
	ThaiMonths = MonthNames{
		"",
		"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
		"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
	}

	EnglishMonths = MonthNames{
		"",
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// Thai comes first and is used when nothing matches.
var (
	monthLocales = []language.Tag{language.Thai, language.English}
	monthTables  = []MonthNames{ThaiMonths, EnglishMonths}
	monthMatcher = language.NewMatcher(monthLocales)
)

// MonthNamesFor returns the table best matching the given preferences.
// Each preference may be a language tag or an Accept-Language header value.
func MonthNamesFor(preferences ...string) MonthNames {
	_, index := language.MatchStrings(monthMatcher, preferences...)
	return monthTables[index]
}

// Name returns the display name for the month, or an empty string
// if m is not in 1..12.
func (n MonthNames) Name(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return n[m]
}
