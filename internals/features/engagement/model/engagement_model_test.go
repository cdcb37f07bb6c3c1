package model

import (
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestPollIsOpen(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		poll PollModel
		want bool
	}{
		{"active without deadline", PollModel{PollIsActive: true}, true},
		{"active before deadline", PollModel{PollIsActive: true, PollClosesAt: &future}, true},
		{"active past deadline", PollModel{PollIsActive: true, PollClosesAt: &past}, false},
		{"closed by hand", PollModel{PollIsActive: false}, false},
		{"closed and expired", PollModel{PollIsActive: false, PollClosesAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poll.IsOpen(now); got != tt.want {
				t.Fatalf("IsOpen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnnouncementVisibleTo(t *testing.T) {
	broadcast := AnnouncementModel{}
	targeted := AnnouncementModel{AnnouncementAudience: pq.StringArray{"student", "warden"}}

	if !broadcast.VisibleTo("student") || !broadcast.VisibleTo("security") {
		t.Fatal("an empty audience must be visible to every role")
	}
	if !targeted.VisibleTo("student") || !targeted.VisibleTo("warden") {
		t.Fatal("targeted roles must see the announcement")
	}
	if targeted.VisibleTo("security") {
		t.Fatal("untargeted roles must not see the announcement")
	}
}
