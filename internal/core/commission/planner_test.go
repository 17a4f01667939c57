package commission

import (
	"testing"

	"github.com/example/atelier/internal/core/effects"
)

func TestPlanAdvanceEffects(t *testing.T) {
	effs := PlanAdvanceEffects(12, StagePending, StageInProgress)
	if len(effs) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(effs))
	}

	notify, ok := effs[0].(effects.NotifyEffect)
	if !ok {
		t.Fatalf("expected NotifyEffect first, got %T", effs[0])
	}
	if notify.Message != MsgStageUpdated || notify.Level != effects.LevelSuccess {
		t.Errorf("unexpected notify effect: %+v", notify)
	}

	activity, ok := effs[1].(effects.ActivityEffect)
	if !ok {
		t.Fatalf("expected ActivityEffect second, got %T", effs[1])
	}
	if activity.EntityID != "12" || activity.Detail != "Pending -> InProgress" {
		t.Errorf("unexpected activity effect: %+v", activity)
	}
}

func TestPlanRequestEffects(t *testing.T) {
	effs := PlanRequestEffects(3, 7)
	notify := effs[0].(effects.NotifyEffect)
	if notify.Message != "Commission Sent and Artist Notified" {
		t.Errorf("message = %q", notify.Message)
	}
	activity := effs[1].(effects.ActivityEffect)
	if activity.Action != ActivityRequest || activity.Detail != "commission_type_id=7" {
		t.Errorf("unexpected activity effect: %+v", activity)
	}
}

func TestPlanRateEffects(t *testing.T) {
	effs := PlanRateEffects(5, 4)
	activity := effs[1].(effects.ActivityEffect)
	if activity.Action != ActivityRate || activity.Detail != "rating=4" || activity.Outcome != "ok" {
		t.Errorf("unexpected activity effect: %+v", activity)
	}
}

func TestPlanFailureEffects(t *testing.T) {
	effs := PlanFailureEffects(ActivityAdvance, 9, "Commission not found", "failed to update commission 9: Commission not found")
	if len(effs) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(effs))
	}

	logEff := effs[0].(effects.LogEffect)
	if logEff.Level != effects.LevelError || logEff.Message != "advance failed" {
		t.Errorf("unexpected log effect: %+v", logEff)
	}
	if logEff.Fields["entity_id"] != 9 || logEff.Fields["error"] != "failed to update commission 9: Commission not found" {
		t.Errorf("unexpected log fields: %v", logEff.Fields)
	}

	activity := effs[1].(effects.ActivityEffect)
	if activity.Outcome != "Commission not found" || activity.EntityID != "9" {
		t.Errorf("unexpected activity effect: %+v", activity)
	}
}
