package deal

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterType selects which predicate variant narrows a deal query beyond the
// base time-window clause.
type FilterType string

const (
	FilterDealClosed FilterType = "deal_closed"
	FilterConRav     FilterType = "con_rav"
	FilterCashColl   FilterType = "cash_coll"
	FilterMissPay    FilterType = "miss_pay"
	FilterUpcoPay    FilterType = "upco_pay"
	FilterRefunded   FilterType = "refunded"
)

// IsKnown reports whether the filter type selects a dedicated predicate.
// Unknown values are not an error: the query falls back to the base clause.
func (t FilterType) IsKnown() bool {
	switch t {
	case FilterDealClosed, FilterConRav, FilterCashColl,
		FilterMissPay, FilterUpcoPay, FilterRefunded:
		return true
	}
	return false
}

// String returns the string representation of FilterType
func (t FilterType) String() string {
	return string(t)
}

var filterLabels = map[FilterType]string{
	FilterDealClosed: "Deals Closed",
	FilterConRav:     "Contract Revenue",
	FilterCashColl:   "Cash Collected",
	FilterMissPay:    "Missed Payments",
	FilterUpcoPay:    "Upcoming Payments",
	FilterRefunded:   "Refunded",
}

// DisplayLabel returns a human-readable label for the filter type. Unknown
// values are title-cased from their raw form.
func (t FilterType) DisplayLabel() string {
	if label, ok := filterLabels[t]; ok {
		return label
	}
	if t == "" {
		return "All Deals"
	}
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(string(t), "_", " "))
}
