// Package commission contains the pure business logic for the commission lifecycle.
// This is part of the Functional Core - no I/O, only pure functions.
package commission

import (
	"fmt"
	"strings"
)

// Stage represents the lifecycle position of a commission.
type Stage string

const (
	StagePending    Stage = "Pending"
	StageInProgress Stage = "InProgress"
	StageCompleted  Stage = "Completed"
)

// stageOrder is the only sequence a commission can move through.
var stageOrder = []Stage{StagePending, StageInProgress, StageCompleted}

// Role is the acting side of a session. An account is exactly one of these.
type Role string

const (
	RoleBuyer  Role = "Buyer"
	RoleSeller Role = "Seller"
)

// ParseStage converts a wire token into a Stage.
// Matching ignores case and the separator used by some clients ("in_progress").
func ParseStage(s string) (Stage, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for _, st := range stageOrder {
		if strings.ToLower(string(st)) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// ParseRole converts a session role string into a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buyer":
		return RoleBuyer, nil
	case "seller":
		return RoleSeller, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// PathSegment returns the lowercase role token used by the role-scoped list endpoint.
func (r Role) PathSegment() string {
	return strings.ToLower(string(r))
}

// InitialStatus returns the stage every new commission starts in.
func InitialStatus() Stage {
	return StagePending
}

// IsTerminal reports whether no further stage exists.
func (s Stage) IsTerminal() bool {
	return s == StageCompleted
}

// Index returns the position of the stage in the lifecycle, or -1 if unknown.
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// NextStage returns the stage that follows s.
// The second result is false for the terminal stage and for unknown stages.
func NextStage(s Stage) (Stage, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(stageOrder) {
		return "", false
	}
	return stageOrder[i+1], true
}

// PermittedActor returns the role allowed to act on a commission in stage s.
// Pending is advanced by the seller; InProgress is completed by the buyer;
// Completed is rated by the buyer.
func PermittedActor(s Stage) Role {
	if s == StagePending {
		return RoleSeller
	}
	return RoleBuyer
}
