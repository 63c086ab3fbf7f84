package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Building struct {
	BuildingID      uuid.UUID `gorm:"column:building_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"building_id"`
	BuildingCode    string    `gorm:"column:building_code;type:varchar(10);not null;uniqueIndex" json:"building_code"`
	BuildingName    string    `gorm:"column:building_name;type:varchar(120);not null" json:"building_name"`
	BuildingAddress string    `gorm:"column:building_address;type:text" json:"building_address"`
	BuildingFloors  int       `gorm:"column:building_floors;not null;default:1;check:building_floors>=1" json:"building_floors"`

	// male|female|mixed — which students the building admits
	BuildingGenderPolicy string `gorm:"column:building_gender_policy;type:varchar(10);not null;default:'mixed'" json:"building_gender_policy"`

	BuildingCreatedAt time.Time      `gorm:"column:building_created_at;not null;default:now()" json:"building_created_at"`
	BuildingUpdatedAt time.Time      `gorm:"column:building_updated_at;not null;default:now()" json:"building_updated_at"`
	BuildingDeletedAt gorm.DeletedAt `gorm:"column:building_deleted_at;index" json:"-"`
}

func (Building) TableName() string {
	return "buildings"
}

func (m *Building) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BuildingCreatedAt.IsZero() {
		m.BuildingCreatedAt = now
	}
	m.BuildingUpdatedAt = now
	return nil
}

func (m *Building) BeforeUpdate(tx *gorm.DB) error {
	m.BuildingUpdatedAt = time.Now()
	return nil
}
