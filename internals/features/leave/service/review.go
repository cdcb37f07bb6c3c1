package service

import "hostelku_backend/internals/features/leave/model"

// ApplyReviewDecision returns the status a review decision lands on and
// whether the row should be written at all. Only a pending request moves; a
// decision that lost the race to another reviewer is a no-op, so the first
// committed decision stands.
func ApplyReviewDecision(current, decision model.LeaveStatus) (model.LeaveStatus, bool) {
	if current != model.LeavePending {
		return current, false
	}
	if decision != model.LeaveApproved && decision != model.LeaveRejected {
		return current, false
	}
	return decision, true
}
