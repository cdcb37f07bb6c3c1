package service

import (
	"testing"
	"time"

	"hostelku_backend/internals/features/leave/model"
)

func approvedLeave() model.LeaveModel {
	return model.LeaveModel{
		LeaveStatus:    model.LeaveApproved,
		LeaveMaxVisits: 2,
	}
}

func TestDecideScan(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	recent := now.Add(-30 * time.Second)
	old := now.Add(-10 * time.Minute)

	tests := []struct {
		name      string
		mutate    func(*model.LeaveModel)
		visitType model.VisitType
		lastSame  *time.Time
		allowed   bool
		lockAfter bool
	}{
		{
			name:      "first outgoing scan allowed",
			mutate:    func(l *model.LeaveModel) {},
			visitType: model.VisitOut,
			allowed:   true,
		},
		{
			name:      "pending leave rejected",
			mutate:    func(l *model.LeaveModel) { l.LeaveStatus = model.LeavePending },
			visitType: model.VisitOut,
		},
		{
			name:      "rejected leave rejected",
			mutate:    func(l *model.LeaveModel) { l.LeaveStatus = model.LeaveRejected },
			visitType: model.VisitOut,
		},
		{
			name:      "locked QR rejects outgoing",
			mutate:    func(l *model.LeaveModel) { l.LeaveVisitLocked = true },
			visitType: model.VisitOut,
		},
		{
			name:      "locked QR rejects incoming",
			mutate:    func(l *model.LeaveModel) { l.LeaveVisitLocked = true },
			visitType: model.VisitIn,
		},
		{
			name:      "retry inside lockout window rejected",
			mutate:    func(l *model.LeaveModel) { l.LeaveOutgoingVisitCount = 1 },
			visitType: model.VisitOut,
			lastSame:  &recent,
		},
		{
			name:      "second outgoing after window allowed",
			mutate:    func(l *model.LeaveModel) { l.LeaveOutgoingVisitCount = 1 },
			visitType: model.VisitOut,
			lastSame:  &old,
			allowed:   true,
		},
		{
			name:      "outgoing cap reached",
			mutate:    func(l *model.LeaveModel) { l.LeaveOutgoingVisitCount = 2 },
			visitType: model.VisitOut,
			lastSame:  &old,
		},
		{
			name:      "incoming before any outgoing rejected",
			mutate:    func(l *model.LeaveModel) {},
			visitType: model.VisitIn,
		},
		{
			name:      "incoming after outgoing allowed and locks",
			mutate:    func(l *model.LeaveModel) { l.LeaveOutgoingVisitCount = 1 },
			visitType: model.VisitIn,
			allowed:   true,
			lockAfter: true,
		},
		{
			name: "second incoming rejected",
			mutate: func(l *model.LeaveModel) {
				l.LeaveOutgoingVisitCount = 1
				l.LeaveIncomingVisitCount = 1
			},
			visitType: model.VisitIn,
			lastSame:  &old,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := approvedLeave()
			tt.mutate(&l)
			got := DecideScan(l, tt.visitType, tt.lastSame, now)
			if got.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v (reason %q)", got.Allowed, tt.allowed, got.Reason)
			}
			if got.LockAfter != tt.lockAfter {
				t.Fatalf("LockAfter = %v, want %v", got.LockAfter, tt.lockAfter)
			}
			if !got.Allowed && got.Reason == "" {
				t.Fatalf("rejected scan must carry a reason")
			}
		})
	}
}

// Two back-to-back scans of the same gate: the first decides allowed, the
// second (after the counter moved) is rejected with the original timestamp.
func TestDecideScanIdempotentRetry(t *testing.T) {
	now := time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)

	l := approvedLeave()
	first := DecideScan(l, model.VisitOut, nil, now)
	if !first.Allowed {
		t.Fatalf("first scan rejected: %q", first.Reason)
	}

	// Caller records the visit.
	l.LeaveOutgoingVisitCount++
	scannedAt := now

	retryAt := now.Add(15 * time.Second)
	second := DecideScan(l, model.VisitOut, &scannedAt, retryAt)
	if second.Allowed {
		t.Fatal("retry inside lockout window must be rejected")
	}
	if second.LastScanAt == nil || !second.LastScanAt.Equal(scannedAt) {
		t.Fatalf("retry must report the original scan time, got %v", second.LastScanAt)
	}
}
