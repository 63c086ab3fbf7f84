package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/campus/buildings/model"
)

type BuildingCreateRequest struct {
	BuildingCode         string `json:"building_code" validate:"required,max=10"`
	BuildingName         string `json:"building_name" validate:"required,max=120"`
	BuildingAddress      string `json:"building_address"`
	BuildingFloors       int    `json:"building_floors" validate:"required,min=1"`
	BuildingGenderPolicy string `json:"building_gender_policy" validate:"omitempty,oneof=male female mixed"`
}

type BuildingUpdateRequest struct {
	BuildingName         *string `json:"building_name,omitempty" validate:"omitempty,max=120"`
	BuildingAddress      *string `json:"building_address,omitempty"`
	BuildingFloors       *int    `json:"building_floors,omitempty" validate:"omitempty,min=1"`
	BuildingGenderPolicy *string `json:"building_gender_policy,omitempty" validate:"omitempty,oneof=male female mixed"`
}

type BuildingResponse struct {
	BuildingID           uuid.UUID `json:"building_id"`
	BuildingCode         string    `json:"building_code"`
	BuildingName         string    `json:"building_name"`
	BuildingAddress      string    `json:"building_address"`
	BuildingFloors       int       `json:"building_floors"`
	BuildingGenderPolicy string    `json:"building_gender_policy"`
	BuildingCreatedAt    time.Time `json:"building_created_at"`
}

func (r *BuildingCreateRequest) ToModel() *model.Building {
	policy := r.BuildingGenderPolicy
	if policy == "" {
		policy = "mixed"
	}
	return &model.Building{
		BuildingCode:         r.BuildingCode,
		BuildingName:         r.BuildingName,
		BuildingAddress:      r.BuildingAddress,
		BuildingFloors:       r.BuildingFloors,
		BuildingGenderPolicy: policy,
	}
}

func ApplyBuildingUpdate(m *model.Building, r BuildingUpdateRequest) {
	if r.BuildingName != nil {
		m.BuildingName = *r.BuildingName
	}
	if r.BuildingAddress != nil {
		m.BuildingAddress = *r.BuildingAddress
	}
	if r.BuildingFloors != nil {
		m.BuildingFloors = *r.BuildingFloors
	}
	if r.BuildingGenderPolicy != nil {
		m.BuildingGenderPolicy = *r.BuildingGenderPolicy
	}
}

func ToBuildingResponse(m *model.Building) BuildingResponse {
	return BuildingResponse{
		BuildingID:           m.BuildingID,
		BuildingCode:         m.BuildingCode,
		BuildingName:         m.BuildingName,
		BuildingAddress:      m.BuildingAddress,
		BuildingFloors:       m.BuildingFloors,
		BuildingGenderPolicy: m.BuildingGenderPolicy,
		BuildingCreatedAt:    m.BuildingCreatedAt,
	}
}

func ToBuildingResponses(list []model.Building) []BuildingResponse {
	out := make([]BuildingResponse, 0, len(list))
	for i := range list {
		out = append(out, ToBuildingResponse(&list[i]))
	}
	return out
}
