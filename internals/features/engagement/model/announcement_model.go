package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AnnouncementModel targets roles: an empty audience means everyone.
type AnnouncementModel struct {
	AnnouncementID uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey" json:"announcement_id"`

	AnnouncementTitle string `gorm:"column:announcement_title;size:200;not null" json:"announcement_title"`
	AnnouncementBody  string `gorm:"column:announcement_body;type:text;not null" json:"announcement_body"`

	AnnouncementAudience pq.StringArray `gorm:"column:announcement_audience;type:text[]" json:"announcement_audience"`

	AnnouncementCreatedBy uuid.UUID `gorm:"column:announcement_created_by;type:uuid;not null" json:"announcement_created_by"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt *time.Time     `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

// VisibleTo reports whether a reader with the given role should see it.
func (a AnnouncementModel) VisibleTo(role string) bool {
	if len(a.AnnouncementAudience) == 0 {
		return true
	}
	for _, r := range a.AnnouncementAudience {
		if r == role {
			return true
		}
	}
	return false
}
