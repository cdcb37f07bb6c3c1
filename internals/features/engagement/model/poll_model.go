package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PollModel struct {
	PollID uuid.UUID `gorm:"column:poll_id;type:uuid;default:gen_random_uuid();primaryKey" json:"poll_id"`

	PollQuestion string         `gorm:"column:poll_question;type:text;not null" json:"poll_question"`
	PollOptions  pq.StringArray `gorm:"column:poll_options;type:text[];not null" json:"poll_options"`

	PollClosesAt *time.Time `gorm:"column:poll_closes_at" json:"poll_closes_at,omitempty"`
	PollIsActive bool       `gorm:"column:poll_is_active;not null;default:true" json:"poll_is_active"`

	PollCreatedBy uuid.UUID `gorm:"column:poll_created_by;type:uuid;not null" json:"poll_created_by"`

	PollCreatedAt time.Time  `gorm:"column:poll_created_at;autoCreateTime" json:"poll_created_at"`
	PollUpdatedAt *time.Time `gorm:"column:poll_updated_at;autoUpdateTime" json:"poll_updated_at,omitempty"`
}

func (PollModel) TableName() string { return "polls" }

// IsOpen reports whether the poll still accepts votes at t.
func (p PollModel) IsOpen(t time.Time) bool {
	if !p.PollIsActive {
		return false
	}
	if p.PollClosesAt != nil && t.After(*p.PollClosesAt) {
		return false
	}
	return true
}

// PollVoteModel stores one vote per student per poll.
type PollVoteModel struct {
	VoteID uuid.UUID `gorm:"column:vote_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vote_id"`

	VotePollID    uuid.UUID `gorm:"column:vote_poll_id;type:uuid;not null;uniqueIndex:uq_votes_poll_student" json:"vote_poll_id"`
	VoteStudentID uuid.UUID `gorm:"column:vote_student_id;type:uuid;not null;uniqueIndex:uq_votes_poll_student" json:"vote_student_id"`

	VoteOptionIndex int `gorm:"column:vote_option_index;not null;check:vote_option_index >= 0" json:"vote_option_index"`

	VoteCreatedAt time.Time `gorm:"column:vote_created_at;autoCreateTime" json:"vote_created_at"`
}

func (PollVoteModel) TableName() string { return "poll_votes" }
