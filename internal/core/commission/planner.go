package commission

import (
	"fmt"
	"strconv"

	"github.com/example/atelier/internal/core/effects"
)

// Toast messages shown after successful mutations.
const (
	MsgRequestSent  = "Commission Sent and Artist Notified"
	MsgStageUpdated = "Updated Successfully"
	MsgRated        = "Commission rated successfully"
)

// Activity actions recorded for lifecycle mutations.
const (
	ActivityRequest = "request"
	ActivityAdvance = "advance"
	ActivityRate    = "rate"
)

// PlanRequestEffects returns the effects of a successfully created commission.
func PlanRequestEffects(commissionID, commissionTypeID int) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: MsgRequestSent},
		effects.ActivityEffect{
			Action:   ActivityRequest,
			EntityID: strconv.Itoa(commissionID),
			Detail:   fmt.Sprintf("commission_type_id=%d", commissionTypeID),
			Outcome:  "ok",
		},
	}
}

// PlanAdvanceEffects returns the effects of a committed stage change.
func PlanAdvanceEffects(commissionID int, from, to Stage) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: MsgStageUpdated},
		effects.ActivityEffect{
			Action:   ActivityAdvance,
			EntityID: strconv.Itoa(commissionID),
			Detail:   fmt.Sprintf("%s -> %s", from, to),
			Outcome:  "ok",
		},
	}
}

// PlanRateEffects returns the effects of a stored rating.
func PlanRateEffects(commissionID, rating int) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: MsgRated},
		effects.ActivityEffect{
			Action:   ActivityRate,
			EntityID: strconv.Itoa(commissionID),
			Detail:   fmt.Sprintf("rating=%d", rating),
			Outcome:  "ok",
		},
	}
}

// PlanFailureEffects returns the effects of a mutation the API rejected or never answered:
// a diagnostic line with the full cause, and an activity entry with what the user was shown.
// The toast for the failure is raised by the caller from the returned error.
func PlanFailureEffects(action string, entityID int, message, cause string) []effects.Effect {
	return []effects.Effect{
		effects.LogEffect{
			Level:   effects.LevelError,
			Message: action + " failed",
			Fields:  map[string]any{"entity_id": entityID, "error": cause},
		},
		effects.ActivityEffect{
			Action:   action,
			EntityID: strconv.Itoa(entityID),
			Outcome:  message,
		},
	}
}
