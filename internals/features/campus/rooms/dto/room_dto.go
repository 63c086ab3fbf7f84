package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/campus/rooms/model"
)

type RoomCreateRequest struct {
	RoomBuildingID       uuid.UUID `json:"room_building_id" validate:"required"`
	RoomNumber           string    `json:"room_number" validate:"required,max=10"`
	RoomFloor            int       `json:"room_floor" validate:"required,min=1"`
	RoomMaxCapacity      int       `json:"room_max_capacity" validate:"required,min=1,max=12"`
	RoomPricePerSemester int64     `json:"room_price_per_semester" validate:"required,min=0"`
	RoomAmenities        []string  `json:"room_amenities,omitempty"`
}

type RoomUpdateRequest struct {
	RoomFloor            *int      `json:"room_floor,omitempty" validate:"omitempty,min=1"`
	RoomMaxCapacity      *int      `json:"room_max_capacity,omitempty" validate:"omitempty,min=1,max=12"`
	RoomPricePerSemester *int64    `json:"room_price_per_semester,omitempty" validate:"omitempty,min=0"`
	RoomAmenities        *[]string `json:"room_amenities,omitempty"`
	RoomStatus           *string   `json:"room_status,omitempty" validate:"omitempty,oneof=AVAILABLE FULL MAINTENANCE CLOSED"`
}

type RoomResponse struct {
	RoomID               uuid.UUID `json:"room_id"`
	RoomBuildingID       uuid.UUID `json:"room_building_id"`
	RoomNumber           string    `json:"room_number"`
	RoomFloor            int       `json:"room_floor"`
	RoomMaxCapacity      int       `json:"room_max_capacity"`
	RoomPricePerSemester int64     `json:"room_price_per_semester"`
	RoomAmenities        []string  `json:"room_amenities"`
	RoomStatus           string    `json:"room_status"`
	RoomOccupants        int64     `json:"room_occupants"` // derived, filled by the controller
	RoomCreatedAt        time.Time `json:"room_created_at"`
}

func (r *RoomCreateRequest) ToModel() *model.Room {
	return &model.Room{
		RoomBuildingID:       r.RoomBuildingID,
		RoomNumber:           r.RoomNumber,
		RoomFloor:            r.RoomFloor,
		RoomMaxCapacity:      r.RoomMaxCapacity,
		RoomPricePerSemester: r.RoomPricePerSemester,
		RoomAmenities:        r.RoomAmenities,
		RoomStatus:           model.RoomStatusAvailable,
	}
}

func ApplyRoomUpdate(m *model.Room, r RoomUpdateRequest) {
	if r.RoomFloor != nil {
		m.RoomFloor = *r.RoomFloor
	}
	if r.RoomMaxCapacity != nil {
		m.RoomMaxCapacity = *r.RoomMaxCapacity
	}
	if r.RoomPricePerSemester != nil {
		m.RoomPricePerSemester = *r.RoomPricePerSemester
	}
	if r.RoomAmenities != nil {
		m.RoomAmenities = *r.RoomAmenities
	}
	if r.RoomStatus != nil {
		m.RoomStatus = model.RoomStatus(*r.RoomStatus)
	}
}

func ToRoomResponse(m *model.Room, occupants int64) RoomResponse {
	return RoomResponse{
		RoomID:               m.RoomID,
		RoomBuildingID:       m.RoomBuildingID,
		RoomNumber:           m.RoomNumber,
		RoomFloor:            m.RoomFloor,
		RoomMaxCapacity:      m.RoomMaxCapacity,
		RoomPricePerSemester: m.RoomPricePerSemester,
		RoomAmenities:        m.RoomAmenities,
		RoomStatus:           string(m.RoomStatus),
		RoomOccupants:        occupants,
		RoomCreatedAt:        m.RoomCreatedAt,
	}
}
