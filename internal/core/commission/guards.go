package commission

import "fmt"

// Action labels shown next to each commission.
const (
	LabelMarkInProgress = "Mark as In Progress"
	LabelMarkComplete   = "Mark as Complete"
	LabelRate           = "Rate"
)

// MinRating and MaxRating bound the buyer's score.
const (
	MinRating = 1
	MaxRating = 5
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// AdvanceContext provides context for the stage transition guard.
type AdvanceContext struct {
	CommissionID int
	Role         Role
	Stage        Stage
	Rated        bool
}

// RequestContext provides context for the commission request guard.
type RequestContext struct {
	Role             Role
	HasToken         bool
	CommissionTypeID int
	// InCatalog is false when the selected type is not offered by the chosen artist.
	InCatalog bool
}

// RateContext provides context for the rating guard.
type RateContext struct {
	CommissionID  int
	Role          Role
	Stage         Stage
	CurrentRating *int
	Rating        int
}

// AdvanceOutcome describes what an allowed advance does.
type AdvanceOutcome string

const (
	// OutcomeStageChange commits the next stage through the API.
	OutcomeStageChange AdvanceOutcome = "stage_change"
	// OutcomeRatingRequired opens the rating prompt instead of changing stage.
	OutcomeRatingRequired AdvanceOutcome = "rating_required"
)

// CanAdvance evaluates whether the actor may act on the commission.
// Rules:
// - Pending -> InProgress: seller only
// - InProgress -> Completed: buyer only
// - Completed: buyer only, and only while unrated (leads to rating, not a stage change)
func CanAdvance(ctx AdvanceContext) GuardResult {
	if ctx.Stage.Index() < 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("commission %d has unknown stage %q", ctx.CommissionID, ctx.Stage),
		}
	}

	if ctx.Stage.IsTerminal() && ctx.Rated {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("commission %d is completed and already rated", ctx.CommissionID),
		}
	}

	want := PermittedActor(ctx.Stage)
	if ctx.Role != want {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only the %s can act on commission %d while it is %s", want, ctx.CommissionID, ctx.Stage),
		}
	}

	return GuardResult{Allowed: true}
}

// PlanAdvance returns the outcome of an advance that CanAdvance allowed,
// and the target stage when the outcome is a stage change.
func PlanAdvance(s Stage) (AdvanceOutcome, Stage) {
	next, ok := NextStage(s)
	if !ok {
		return OutcomeRatingRequired, s
	}
	return OutcomeStageChange, next
}

// CanRequestCommission evaluates whether a buyer may submit a new commission.
func CanRequestCommission(ctx RequestContext) GuardResult {
	if !ctx.HasToken {
		return GuardResult{Allowed: false, Reason: "not logged in. Log in first with: atelier login"}
	}
	if ctx.Role != RoleBuyer {
		return GuardResult{Allowed: false, Reason: "only buyers can request commissions"}
	}
	if ctx.CommissionTypeID <= 0 {
		return GuardResult{Allowed: false, Reason: "select a commission type first"}
	}
	if !ctx.InCatalog {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("commission type %d is not offered by this artist", ctx.CommissionTypeID),
		}
	}
	return GuardResult{Allowed: true}
}

// CanRate evaluates whether the buyer may rate the commission.
// Rules:
// - Rating must be a whole number between 1 and 5
// - Only the buyer rates
// - Commission must be Completed
// - A rating is never overwritten
func CanRate(ctx RateContext) GuardResult {
	if result := ValidRating(ctx.Rating); !result.Allowed {
		return result
	}
	if ctx.Role != RoleBuyer {
		return GuardResult{Allowed: false, Reason: "only the buyer can rate a commission"}
	}
	if ctx.Stage != StageCompleted {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("commission %d can only be rated once completed (current stage: %s)", ctx.CommissionID, ctx.Stage),
		}
	}
	if ctx.CurrentRating != nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("commission %d is already rated %d", ctx.CommissionID, *ctx.CurrentRating),
		}
	}
	return GuardResult{Allowed: true}
}

// ValidRating checks only the rating value. It needs no commission state.
func ValidRating(rating int) GuardResult {
	if rating < MinRating || rating > MaxRating {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("rating must be between %d and %d (got %d)", MinRating, MaxRating, rating),
		}
	}
	return GuardResult{Allowed: true}
}

// ActionLabel is the label of the single action offered for a commission.
func ActionLabel(s Stage) string {
	switch s {
	case StagePending:
		return LabelMarkInProgress
	case StageInProgress:
		return LabelMarkComplete
	case StageCompleted:
		return LabelRate
	}
	return string(s)
}

// ActionState pairs the action label with whether the actor may trigger it.
type ActionState struct {
	Label   string
	Enabled bool
}

// ActionFor computes the action the given role sees for a commission.
func ActionFor(role Role, s Stage, rated bool) ActionState {
	return ActionState{
		Label:   ActionLabel(s),
		Enabled: CanAdvance(AdvanceContext{Role: role, Stage: s, Rated: rated}).Allowed,
	}
}

// BadgeCount returns the number of stages that are not Completed.
func BadgeCount(stages []Stage) int {
	n := 0
	for _, s := range stages {
		if s != StageCompleted {
			n++
		}
	}
	return n
}
