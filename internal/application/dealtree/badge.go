package dealtree

import "strings"

// BadgeClass is the semantic styling class of a status badge
type BadgeClass string

const (
	BadgeSuccess     BadgeClass = "success"
	BadgePrimary     BadgeClass = "primary"
	BadgePending     BadgeClass = "pending"
	BadgeWarning     BadgeClass = "warning"
	BadgeDestructive BadgeClass = "destructive"
	BadgeNeutral     BadgeClass = "neutral"
)

// Badge is the classified display form of a raw status string
type Badge struct {
	Label string     `json:"label"`
	Class BadgeClass `json:"class"`
	Icon  string     `json:"icon,omitempty"`
}

// ClassifyStatus maps a raw status string, case-insensitively, to its badge.
// Statuses outside the fixed table render as a neutral badge carrying the raw
// string unchanged.
func ClassifyStatus(status string) Badge {
	switch strings.ToLower(status) {
	case "fully_paid", "completed", "paid", "won":
		return Badge{Label: "Fully Paid", Class: BadgeSuccess, Icon: "check-circle"}
	case "in_progress":
		return Badge{Label: "In Progress", Class: BadgePrimary, Icon: "clock"}
	case "opportunity":
		return Badge{Label: "Opportunity", Class: BadgePending, Icon: "target"}
	case "paused":
		return Badge{Label: "Paused", Class: BadgeWarning, Icon: "alert-circle"}
	case "partially_refunded", "partial":
		return Badge{Label: "Partially Refunded", Class: BadgeWarning, Icon: "refresh-cw"}
	case "cancelled":
		return Badge{Label: "Cancelled", Class: BadgeDestructive, Icon: "x-circle"}
	case "refunded":
		return Badge{Label: "Refunded", Class: BadgeDestructive, Icon: "x-circle"}
	case "failed":
		return Badge{Label: "Failed", Class: BadgeDestructive, Icon: "x-circle"}
	case "pending", "scheduled":
		return Badge{Label: "Pending", Class: BadgePending, Icon: "clock"}
	default:
		return Badge{Label: status, Class: BadgeNeutral}
	}
}
