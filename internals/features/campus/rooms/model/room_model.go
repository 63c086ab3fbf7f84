package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusFull        RoomStatus = "FULL"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
	RoomStatusClosed      RoomStatus = "CLOSED"
)

type Room struct {
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`

	// FK → buildings(building_id)
	RoomBuildingID uuid.UUID `gorm:"column:room_building_id;type:uuid;not null;index;uniqueIndex:uq_room_building_number,priority:1" json:"room_building_id"`
	RoomNumber     string    `gorm:"column:room_number;type:varchar(10);not null;uniqueIndex:uq_room_building_number,priority:2" json:"room_number"`
	RoomFloor      int       `gorm:"column:room_floor;not null;default:1" json:"room_floor"`

	RoomMaxCapacity      int   `gorm:"column:room_max_capacity;not null;check:room_max_capacity>=1" json:"room_max_capacity"`
	RoomPricePerSemester int64 `gorm:"column:room_price_per_semester;not null;check:room_price_per_semester>=0" json:"room_price_per_semester"`

	RoomAmenities pq.StringArray `gorm:"column:room_amenities;type:text[]" json:"room_amenities"` // e.g. aircon, private_bathroom

	RoomStatus RoomStatus `gorm:"column:room_status;type:varchar(20);not null;default:'AVAILABLE';index" json:"room_status"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;not null;default:now()" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;not null;default:now()" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (Room) TableName() string {
	return "rooms"
}

func (m *Room) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.RoomCreatedAt.IsZero() {
		m.RoomCreatedAt = now
	}
	m.RoomUpdatedAt = now
	return nil
}

func (m *Room) BeforeUpdate(tx *gorm.DB) error {
	m.RoomUpdatedAt = time.Now()
	return nil
}
