package service

import (
	"fmt"
	"time"

	"hostelku_backend/internals/features/leave/model"
)

// ScanLockoutWindow is the interval within which a second scan of the same
// gate counts as a scanner retry, not a new visit.
const ScanLockoutWindow = 2 * time.Minute

// ScanDecision is what the gate endpoint acts on. A rejected scan is still a
// useful scan: Reason and LastScanAt are shown to the guard alongside the
// existing record.
type ScanDecision struct {
	Allowed    bool
	Reason     string
	LastScanAt *time.Time

	// LockAfter marks that recording this visit exhausts the QR.
	LockAfter bool
}

// DecideScan applies the gate rules to one scan attempt. lastSameGate is the
// timestamp of the most recent recorded visit of the same type, nil if none.
// It never mutates anything; the caller records the visit in a transaction.
func DecideScan(l model.LeaveModel, visitType model.VisitType, lastSameGate *time.Time, now time.Time) ScanDecision {
	if l.LeaveStatus != model.LeaveApproved {
		return ScanDecision{Reason: fmt.Sprintf("Leave is %s, QR is not active", l.LeaveStatus)}
	}
	if l.LeaveVisitLocked {
		return ScanDecision{Reason: "QR is locked, all visits used", LastScanAt: lastSameGate}
	}

	if lastSameGate != nil && now.Sub(*lastSameGate) < ScanLockoutWindow {
		return ScanDecision{Reason: "QR already scanned", LastScanAt: lastSameGate}
	}

	switch visitType {
	case model.VisitOut:
		if l.LeaveOutgoingVisitCount >= l.LeaveMaxVisits {
			return ScanDecision{
				Reason:     fmt.Sprintf("Outgoing limit reached (%d/%d)", l.LeaveOutgoingVisitCount, l.LeaveMaxVisits),
				LastScanAt: lastSameGate,
			}
		}
		return ScanDecision{Allowed: true}

	case model.VisitIn:
		if l.LeaveIncomingVisitCount >= 1 {
			return ScanDecision{Reason: "Incoming entry already recorded (1/1)", LastScanAt: lastSameGate}
		}
		if l.LeaveOutgoingVisitCount == 0 {
			return ScanDecision{Reason: "No outgoing visit recorded yet"}
		}
		// The single incoming scan closes the QR.
		return ScanDecision{Allowed: true, LockAfter: true}

	default:
		return ScanDecision{Reason: "Unknown gate type"}
	}
}
