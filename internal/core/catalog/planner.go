package catalog

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/example/atelier/internal/core/effects"
)

// Toast messages for seller catalog edits.
const (
	MsgUpdated = "Updated successfully"
	MsgDeleted = "Deleted successfully"
)

// Activity actions for seller catalog edits.
const (
	ActivityUpdateType = "update_type"
	ActivityDeleteType = "delete_type"
)

// PlanUpdateEffects returns the effects of a saved commission type edit.
func PlanUpdateEffects(commissionTypeID int, title string, price decimal.Decimal) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: MsgUpdated},
		effects.ActivityEffect{
			Action:   ActivityUpdateType,
			EntityID: strconv.Itoa(commissionTypeID),
			Detail:   fmt.Sprintf("title=%q price=%s", title, price.StringFixed(2)),
			Outcome:  "ok",
		},
	}
}

// PlanDeleteEffects returns the effects of a deleted commission type.
func PlanDeleteEffects(commissionTypeID int) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: MsgDeleted},
		effects.ActivityEffect{
			Action:   ActivityDeleteType,
			EntityID: strconv.Itoa(commissionTypeID),
			Outcome:  "ok",
		},
	}
}

// PlanFailureEffects returns the effects of a catalog edit the API rejected or never answered.
func PlanFailureEffects(action string, commissionTypeID int, message, cause string) []effects.Effect {
	return []effects.Effect{
		effects.LogEffect{
			Level:   effects.LevelError,
			Message: action + " failed",
			Fields:  map[string]any{"commission_type_id": commissionTypeID, "error": cause},
		},
		effects.ActivityEffect{
			Action:   action,
			EntityID: strconv.Itoa(commissionTypeID),
			Outcome:  message,
		},
	}
}
