package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/users/students/model"
)

// ================== REQUEST ==================

type StudentCreateRequest struct {
	StudentCode        string     `json:"student_code" validate:"required,max=20"`
	StudentFullName    string     `json:"student_full_name" validate:"required,max=120"`
	StudentEmail       string     `json:"student_email" validate:"omitempty,email"`
	StudentPhone       string     `json:"student_phone" validate:"omitempty,max=20"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth,omitempty"`
	StudentGender      string     `json:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentHomeAddress string     `json:"student_home_address"`
	StudentFaculty     string     `json:"student_faculty" validate:"omitempty,max=120"`
	StudentCohort      string     `json:"student_cohort" validate:"omitempty,max=20"`
}

// partial update
type StudentUpdateRequest struct {
	StudentFullName    *string    `json:"student_full_name,omitempty" validate:"omitempty,max=120"`
	StudentEmail       *string    `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone       *string    `json:"student_phone,omitempty" validate:"omitempty,max=20"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth,omitempty"`
	StudentGender      *string    `json:"student_gender,omitempty" validate:"omitempty,oneof=male female other"`
	StudentHomeAddress *string    `json:"student_home_address,omitempty"`
	StudentFaculty     *string    `json:"student_faculty,omitempty" validate:"omitempty,max=120"`
	StudentCohort      *string    `json:"student_cohort,omitempty" validate:"omitempty,max=20"`
	StudentStatus      *string    `json:"student_status,omitempty" validate:"omitempty,oneof=STUDYING SUSPENDED GRADUATED"`
}

type CheckInRequest struct {
	RoomID uuid.UUID `json:"room_id" validate:"required"`
}

// ================== RESPONSE ==================

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentCode          string     `json:"student_code"`
	StudentFullName      string     `json:"student_full_name"`
	StudentEmail         string     `json:"student_email"`
	StudentPhone         string     `json:"student_phone"`
	StudentDateOfBirth   *time.Time `json:"student_date_of_birth,omitempty"`
	StudentGender        string     `json:"student_gender"`
	StudentHomeAddress   string     `json:"student_home_address"`
	StudentFaculty       string     `json:"student_faculty"`
	StudentCohort        string     `json:"student_cohort"`
	StudentCurrentRoomID *uuid.UUID `json:"student_current_room_id,omitempty"`
	StudentStatus        string     `json:"student_status"`
	StudentStayStatus    string     `json:"student_stay_status"`
	StudentCreatedAt     time.Time  `json:"student_created_at"`
}

// ================ CONVERSION =================

func (r *StudentCreateRequest) ToModel() *model.Student {
	return &model.Student{
		StudentCode:        r.StudentCode,
		StudentFullName:    r.StudentFullName,
		StudentEmail:       r.StudentEmail,
		StudentPhone:       r.StudentPhone,
		StudentDateOfBirth: r.StudentDateOfBirth,
		StudentGender:      r.StudentGender,
		StudentHomeAddress: r.StudentHomeAddress,
		StudentFaculty:     r.StudentFaculty,
		StudentCohort:      r.StudentCohort,
		StudentStatus:      model.StudentStatusStudying,
		StudentStayStatus:  model.StayStatusNotStaying,
	}
}

func ApplyStudentUpdate(m *model.Student, r StudentUpdateRequest) {
	if r.StudentFullName != nil {
		m.StudentFullName = *r.StudentFullName
	}
	if r.StudentEmail != nil {
		m.StudentEmail = *r.StudentEmail
	}
	if r.StudentPhone != nil {
		m.StudentPhone = *r.StudentPhone
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = r.StudentDateOfBirth
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentHomeAddress != nil {
		m.StudentHomeAddress = *r.StudentHomeAddress
	}
	if r.StudentFaculty != nil {
		m.StudentFaculty = *r.StudentFaculty
	}
	if r.StudentCohort != nil {
		m.StudentCohort = *r.StudentCohort
	}
	if r.StudentStatus != nil {
		m.StudentStatus = model.StudentStatus(*r.StudentStatus)
	}
}

func ToStudentResponse(m *model.Student) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentCode:          m.StudentCode,
		StudentFullName:      m.StudentFullName,
		StudentEmail:         m.StudentEmail,
		StudentPhone:         m.StudentPhone,
		StudentDateOfBirth:   m.StudentDateOfBirth,
		StudentGender:        m.StudentGender,
		StudentHomeAddress:   m.StudentHomeAddress,
		StudentFaculty:       m.StudentFaculty,
		StudentCohort:        m.StudentCohort,
		StudentCurrentRoomID: m.StudentCurrentRoomID,
		StudentStatus:        string(m.StudentStatus),
		StudentStayStatus:    string(m.StudentStayStatus),
		StudentCreatedAt:     m.StudentCreatedAt,
	}
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, ToStudentResponse(&list[i]))
	}
	return out
}
