package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/campus/semesters/model"
)

type SemesterCreateRequest struct {
	SemesterName                string     `json:"semester_name" validate:"required,max=60"`
	SemesterTerm                int        `json:"semester_term" validate:"required,min=1,max=3"`
	SemesterAcademicYear        string     `json:"semester_academic_year" validate:"required,max=9"`
	SemesterStartDate           time.Time  `json:"semester_start_date" validate:"required"`
	SemesterEndDate             time.Time  `json:"semester_end_date" validate:"required,gtfield=SemesterStartDate"`
	SemesterRegistrationOpenAt  time.Time  `json:"semester_registration_open_at" validate:"required"`
	SemesterRegistrationCloseAt time.Time  `json:"semester_registration_close_at" validate:"required,gtfield=SemesterRegistrationOpenAt"`
	SemesterRenewalOpenAt       *time.Time `json:"semester_renewal_open_at,omitempty"`
	SemesterRenewalCloseAt      *time.Time `json:"semester_renewal_close_at,omitempty"`
}

type SemesterUpdateRequest struct {
	SemesterName                *string    `json:"semester_name,omitempty" validate:"omitempty,max=60"`
	SemesterStartDate           *time.Time `json:"semester_start_date,omitempty"`
	SemesterEndDate             *time.Time `json:"semester_end_date,omitempty"`
	SemesterRegistrationOpenAt  *time.Time `json:"semester_registration_open_at,omitempty"`
	SemesterRegistrationCloseAt *time.Time `json:"semester_registration_close_at,omitempty"`
	SemesterRenewalOpenAt       *time.Time `json:"semester_renewal_open_at,omitempty"`
	SemesterRenewalCloseAt      *time.Time `json:"semester_renewal_close_at,omitempty"`
}

type SemesterResponse struct {
	SemesterID                  uuid.UUID  `json:"semester_id"`
	SemesterName                string     `json:"semester_name"`
	SemesterTerm                int        `json:"semester_term"`
	SemesterAcademicYear        string     `json:"semester_academic_year"`
	SemesterStartDate           time.Time  `json:"semester_start_date"`
	SemesterEndDate             time.Time  `json:"semester_end_date"`
	SemesterRegistrationOpenAt  time.Time  `json:"semester_registration_open_at"`
	SemesterRegistrationCloseAt time.Time  `json:"semester_registration_close_at"`
	SemesterRenewalOpenAt       *time.Time `json:"semester_renewal_open_at,omitempty"`
	SemesterRenewalCloseAt      *time.Time `json:"semester_renewal_close_at,omitempty"`
	SemesterIsActive            bool       `json:"semester_is_active"`
}

func (r *SemesterCreateRequest) ToModel() *model.Semester {
	return &model.Semester{
		SemesterName:                r.SemesterName,
		SemesterTerm:                r.SemesterTerm,
		SemesterAcademicYear:        r.SemesterAcademicYear,
		SemesterStartDate:           r.SemesterStartDate,
		SemesterEndDate:             r.SemesterEndDate,
		SemesterRegistrationOpenAt:  r.SemesterRegistrationOpenAt,
		SemesterRegistrationCloseAt: r.SemesterRegistrationCloseAt,
		SemesterRenewalOpenAt:       r.SemesterRenewalOpenAt,
		SemesterRenewalCloseAt:      r.SemesterRenewalCloseAt,
	}
}

func ApplySemesterUpdate(m *model.Semester, r SemesterUpdateRequest) {
	if r.SemesterName != nil {
		m.SemesterName = *r.SemesterName
	}
	if r.SemesterStartDate != nil {
		m.SemesterStartDate = *r.SemesterStartDate
	}
	if r.SemesterEndDate != nil {
		m.SemesterEndDate = *r.SemesterEndDate
	}
	if r.SemesterRegistrationOpenAt != nil {
		m.SemesterRegistrationOpenAt = *r.SemesterRegistrationOpenAt
	}
	if r.SemesterRegistrationCloseAt != nil {
		m.SemesterRegistrationCloseAt = *r.SemesterRegistrationCloseAt
	}
	if r.SemesterRenewalOpenAt != nil {
		m.SemesterRenewalOpenAt = r.SemesterRenewalOpenAt
	}
	if r.SemesterRenewalCloseAt != nil {
		m.SemesterRenewalCloseAt = r.SemesterRenewalCloseAt
	}
}

func ToSemesterResponse(m *model.Semester) SemesterResponse {
	return SemesterResponse{
		SemesterID:                  m.SemesterID,
		SemesterName:                m.SemesterName,
		SemesterTerm:                m.SemesterTerm,
		SemesterAcademicYear:        m.SemesterAcademicYear,
		SemesterStartDate:           m.SemesterStartDate,
		SemesterEndDate:             m.SemesterEndDate,
		SemesterRegistrationOpenAt:  m.SemesterRegistrationOpenAt,
		SemesterRegistrationCloseAt: m.SemesterRegistrationCloseAt,
		SemesterRenewalOpenAt:       m.SemesterRenewalOpenAt,
		SemesterRenewalCloseAt:      m.SemesterRenewalCloseAt,
		SemesterIsActive:            m.SemesterIsActive,
	}
}

func ToSemesterResponses(list []model.Semester) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(list))
	for i := range list {
		out = append(out, ToSemesterResponse(&list[i]))
	}
	return out
}
