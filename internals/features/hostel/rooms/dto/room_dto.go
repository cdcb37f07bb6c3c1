// internals/features/hostel/rooms/dto/room_dto.go
package dto

import (
	m "hostelku_backend/internals/features/hostel/rooms/model"
)

/* =============== REQUESTS =============== */

type CreateRoomRequest struct {
	RoomNumber   string `json:"room_number"   validate:"required,min=1,max=20"`
	RoomBlock    string `json:"room_block"    validate:"required,min=1,max=20"`
	RoomFloor    int16  `json:"room_floor"    validate:"gte=0,lte=50"`
	RoomCapacity int16  `json:"room_capacity" validate:"required,gte=1,lte=12"`
}

func (r CreateRoomRequest) ToModel() *m.RoomModel {
	return &m.RoomModel{
		RoomNumber:   r.RoomNumber,
		RoomBlock:    r.RoomBlock,
		RoomFloor:    r.RoomFloor,
		RoomCapacity: r.RoomCapacity,
	}
}

// Update (partial)
type UpdateRoomRequest struct {
	RoomNumber   *string `json:"room_number"   validate:"omitempty,min=1,max=20"`
	RoomBlock    *string `json:"room_block"    validate:"omitempty,min=1,max=20"`
	RoomFloor    *int16  `json:"room_floor"    validate:"omitempty,gte=0,lte=50"`
	RoomCapacity *int16  `json:"room_capacity" validate:"omitempty,gte=1,lte=12"`
}

func (r UpdateRoomRequest) ApplyTo(mo *m.RoomModel) {
	if r.RoomNumber != nil {
		mo.RoomNumber = *r.RoomNumber
	}
	if r.RoomBlock != nil {
		mo.RoomBlock = *r.RoomBlock
	}
	if r.RoomFloor != nil {
		mo.RoomFloor = *r.RoomFloor
	}
	if r.RoomCapacity != nil {
		mo.RoomCapacity = *r.RoomCapacity
	}
}

/* =============== RESPONSES =============== */

type RoomResponse struct {
	RoomID            string `json:"room_id"`
	RoomNumber        string `json:"room_number"`
	RoomBlock         string `json:"room_block"`
	RoomFloor         int16  `json:"room_floor"`
	RoomCapacity      int16  `json:"room_capacity"`
	RoomOccupiedCount int16  `json:"room_occupied_count"`
	RoomHasVacancy    bool   `json:"room_has_vacancy"`
}

func FromModel(mo m.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:            mo.RoomID.String(),
		RoomNumber:        mo.RoomNumber,
		RoomBlock:         mo.RoomBlock,
		RoomFloor:         mo.RoomFloor,
		RoomCapacity:      mo.RoomCapacity,
		RoomOccupiedCount: mo.RoomOccupiedCount,
		RoomHasVacancy:    mo.HasVacancy(),
	}
}
