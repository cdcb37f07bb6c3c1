package service

import (
	"testing"

	"hostelku_backend/internals/features/leave/model"
)

func TestApplyReviewDecision(t *testing.T) {
	tests := []struct {
		name     string
		current  model.LeaveStatus
		decision model.LeaveStatus
		want     model.LeaveStatus
		applies  bool
	}{
		{"pending approves", model.LeavePending, model.LeaveApproved, model.LeaveApproved, true},
		{"pending rejects", model.LeavePending, model.LeaveRejected, model.LeaveRejected, true},
		{"approved absorbs a late reject", model.LeaveApproved, model.LeaveRejected, model.LeaveApproved, false},
		{"rejected absorbs a late approve", model.LeaveRejected, model.LeaveApproved, model.LeaveRejected, false},
		{"approved absorbs a repeat approve", model.LeaveApproved, model.LeaveApproved, model.LeaveApproved, false},
		{"pending never moves back to pending", model.LeavePending, model.LeavePending, model.LeavePending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applies := ApplyReviewDecision(tt.current, tt.decision)
			if got != tt.want || applies != tt.applies {
				t.Fatalf("ApplyReviewDecision(%s, %s) = (%s, %v), want (%s, %v)",
					tt.current, tt.decision, got, applies, tt.want, tt.applies)
			}
		})
	}
}

// Two reviewers racing on the same request must land exactly one decision.
func TestApplyReviewDecisionRace(t *testing.T) {
	current := model.LeavePending
	applied := 0
	for _, decision := range []model.LeaveStatus{model.LeaveApproved, model.LeaveRejected} {
		if next, ok := ApplyReviewDecision(current, decision); ok {
			current = next
			applied++
		}
	}
	if applied != 1 {
		t.Fatalf("expected exactly one decision to apply, got %d", applied)
	}
	if current != model.LeaveApproved {
		t.Fatalf("first committed decision should stand, got %s", current)
	}
}
