package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Manager struct {
	ManagerID       uuid.UUID `gorm:"column:manager_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"manager_id"`
	ManagerStaffNo  string    `gorm:"column:manager_staff_no;type:varchar(20);not null;uniqueIndex" json:"manager_staff_no"`
	ManagerFullName string    `gorm:"column:manager_full_name;type:varchar(120);not null" json:"manager_full_name"`
	ManagerEmail    string    `gorm:"column:manager_email;type:varchar(120);not null" json:"manager_email"`
	ManagerPhone    string    `gorm:"column:manager_phone;type:varchar(20)" json:"manager_phone"`

	// FK → buildings(building_id); the building this manager is responsible for
	ManagerBuildingID *uuid.UUID `gorm:"column:manager_building_id;type:uuid;index" json:"manager_building_id,omitempty"`

	ManagerCreatedAt time.Time      `gorm:"column:manager_created_at;not null;default:now()" json:"manager_created_at"`
	ManagerUpdatedAt time.Time      `gorm:"column:manager_updated_at;not null;default:now()" json:"manager_updated_at"`
	ManagerDeletedAt gorm.DeletedAt `gorm:"column:manager_deleted_at;index" json:"-"`
}

func (Manager) TableName() string {
	return "managers"
}

func (m *Manager) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ManagerCreatedAt.IsZero() {
		m.ManagerCreatedAt = now
	}
	m.ManagerUpdatedAt = now
	return nil
}

func (m *Manager) BeforeUpdate(tx *gorm.DB) error {
	m.ManagerUpdatedAt = time.Now()
	return nil
}
