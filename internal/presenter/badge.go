package presenter

import (
	"fmt"

	"github.com/Veraticus/verdict/internal/model"
)

// Badge selects the single visual style of the status indicator. Exactly one
// badge is active at a time.
type Badge int

// Badge variants, one per status.
const (
	BadgeError Badge = iota
	BadgeOK
	BadgeReview
	BadgeBlock
)

// Badges lists every variant.
var Badges = []Badge{BadgeOK, BadgeReview, BadgeBlock, BadgeError}

// BadgeFor maps a status to its badge. Anything that is not a successful
// verdict gets the error badge.
func BadgeFor(status model.Status) Badge {
	switch status {
	case model.StatusOK:
		return BadgeOK
	case model.StatusReview:
		return BadgeReview
	case model.StatusBlock:
		return BadgeBlock
	case model.StatusError:
		return BadgeError
	default:
		return BadgeError
	}
}

// String returns the badge's style name.
func (b Badge) String() string {
	switch b {
	case BadgeOK:
		return "badge--ok"
	case BadgeReview:
		return "badge--review"
	case BadgeBlock:
		return "badge--block"
	case BadgeError:
		return "badge--error"
	default:
		return fmt.Sprintf("badge--unknown(%d)", int(b))
	}
}
