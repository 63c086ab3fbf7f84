package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/users/managers/model"
)

// ================== REQUEST ==================

type ManagerCreateRequest struct {
	ManagerStaffNo    string     `json:"manager_staff_no" validate:"required,max=20"`
	ManagerFullName   string     `json:"manager_full_name" validate:"required,max=120"`
	ManagerEmail      string     `json:"manager_email" validate:"required,email"`
	ManagerPhone      string     `json:"manager_phone" validate:"omitempty,max=20"`
	ManagerBuildingID *uuid.UUID `json:"manager_building_id,omitempty"`
	// account username for the manager portal
	Username string `json:"username" validate:"required,min=3,max=60"`
}

type ManagerUpdateRequest struct {
	ManagerFullName   *string    `json:"manager_full_name,omitempty" validate:"omitempty,max=120"`
	ManagerEmail      *string    `json:"manager_email,omitempty" validate:"omitempty,email"`
	ManagerPhone      *string    `json:"manager_phone,omitempty" validate:"omitempty,max=20"`
	ManagerBuildingID *uuid.UUID `json:"manager_building_id,omitempty"`
}

// ================== RESPONSE ==================

type ManagerResponse struct {
	ManagerID         uuid.UUID  `json:"manager_id"`
	ManagerStaffNo    string     `json:"manager_staff_no"`
	ManagerFullName   string     `json:"manager_full_name"`
	ManagerEmail      string     `json:"manager_email"`
	ManagerPhone      string     `json:"manager_phone"`
	ManagerBuildingID *uuid.UUID `json:"manager_building_id,omitempty"`
	ManagerCreatedAt  time.Time  `json:"manager_created_at"`
}

// ================ CONVERSION =================

func (r *ManagerCreateRequest) ToModel() *model.Manager {
	return &model.Manager{
		ManagerStaffNo:    r.ManagerStaffNo,
		ManagerFullName:   r.ManagerFullName,
		ManagerEmail:      r.ManagerEmail,
		ManagerPhone:      r.ManagerPhone,
		ManagerBuildingID: r.ManagerBuildingID,
	}
}

func ApplyManagerUpdate(m *model.Manager, r ManagerUpdateRequest) {
	if r.ManagerFullName != nil {
		m.ManagerFullName = *r.ManagerFullName
	}
	if r.ManagerEmail != nil {
		m.ManagerEmail = *r.ManagerEmail
	}
	if r.ManagerPhone != nil {
		m.ManagerPhone = *r.ManagerPhone
	}
	if r.ManagerBuildingID != nil {
		m.ManagerBuildingID = r.ManagerBuildingID
	}
}

func ToManagerResponse(m *model.Manager) ManagerResponse {
	return ManagerResponse{
		ManagerID:         m.ManagerID,
		ManagerStaffNo:    m.ManagerStaffNo,
		ManagerFullName:   m.ManagerFullName,
		ManagerEmail:      m.ManagerEmail,
		ManagerPhone:      m.ManagerPhone,
		ManagerBuildingID: m.ManagerBuildingID,
		ManagerCreatedAt:  m.ManagerCreatedAt,
	}
}

func ToManagerResponses(list []model.Manager) []ManagerResponse {
	out := make([]ManagerResponse, 0, len(list))
	for i := range list {
		out = append(out, ToManagerResponse(&list[i]))
	}
	return out
}
