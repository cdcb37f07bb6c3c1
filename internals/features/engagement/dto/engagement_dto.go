package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ======================= POLLS ======================= */

type CreatePollRequest struct {
	Question string     `json:"question" validate:"required,min=5"`
	Options  []string   `json:"options" validate:"required,min=2,dive,required"`
	ClosesAt *time.Time `json:"closes_at,omitempty"`
}

type VoteRequest struct {
	OptionIndex int `json:"option_index" validate:"min=0"`
}

// PollResults pairs the poll with per-option tallies.
type PollResults struct {
	PollID   uuid.UUID `json:"poll_id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
	Counts   []int64   `json:"counts"`
	Total    int64     `json:"total"`
	MyVote   *int      `json:"my_vote,omitempty"`
}

/* ======================= ANNOUNCEMENTS ======================= */

type CreateAnnouncementRequest struct {
	Title    string   `json:"title" validate:"required,min=3,max=200"`
	Body     string   `json:"body" validate:"required,min=3"`
	Audience []string `json:"audience,omitempty" validate:"omitempty,dive,required"`
}

type UpdateAnnouncementRequest struct {
	Title    *string   `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Body     *string   `json:"body,omitempty" validate:"omitempty,min=3"`
	Audience *[]string `json:"audience,omitempty"`
}
