package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`

	RoomNumber string `gorm:"column:room_number;size:20;not null;uniqueIndex:uq_rooms_block_number" json:"room_number"`
	RoomBlock  string `gorm:"column:room_block;size:20;not null;uniqueIndex:uq_rooms_block_number" json:"room_block"`
	RoomFloor  int16  `gorm:"column:room_floor;type:smallint;not null" json:"room_floor"`

	RoomCapacity      int16 `gorm:"column:room_capacity;type:smallint;not null;check:room_capacity > 0" json:"room_capacity"`
	RoomOccupiedCount int16 `gorm:"column:room_occupied_count;type:smallint;not null;default:0" json:"room_occupied_count"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt *time.Time     `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at,omitempty"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }

func (m *RoomModel) HasVacancy() bool {
	return m.RoomOccupiedCount < m.RoomCapacity
}
