package dto

import (
	"github.com/google/uuid"

	institute "schoolku_backend/internals/features/lembaga/institutes/model"
)

/* ==============================
   DTO — institutes
============================== */

type InstituteCreateDTO struct {
	InstituteName    string  `json:"institute_name" validate:"required,max=150"`
	InstituteAddress *string `json:"institute_address,omitempty" validate:"omitempty,max=500"`
	InstitutePhone   *string `json:"institute_phone,omitempty" validate:"omitempty,max=20"`
	InstituteEmail   *string `json:"institute_email,omitempty" validate:"omitempty,email"`

	// Akun admin pertama untuk tenant ini (opsional, dibuat satu transaksi)
	AdminName     *string `json:"admin_name,omitempty" validate:"omitempty,max=100"`
	AdminEmail    *string `json:"admin_email,omitempty" validate:"omitempty,email"`
	AdminPassword *string `json:"admin_password,omitempty" validate:"omitempty,min=8"`
}

type InstituteUpdateDTO struct {
	InstituteName     *string `json:"institute_name,omitempty" validate:"omitempty,max=150"`
	InstituteAddress  *string `json:"institute_address,omitempty" validate:"omitempty,max=500"`
	InstitutePhone    *string `json:"institute_phone,omitempty" validate:"omitempty,max=20"`
	InstituteEmail    *string `json:"institute_email,omitempty" validate:"omitempty,email"`
	InstituteIsActive *bool   `json:"institute_is_active,omitempty"`
}

type InstituteResponse struct {
	InstituteID       uuid.UUID `json:"institute_id"`
	InstituteName     string    `json:"institute_name"`
	InstituteAddress  *string   `json:"institute_address,omitempty"`
	InstitutePhone    *string   `json:"institute_phone,omitempty"`
	InstituteEmail    *string   `json:"institute_email,omitempty"`
	InstituteIsActive bool      `json:"institute_is_active"`
}

func (in InstituteCreateDTO) ToModel() institute.InstituteModel {
	return institute.InstituteModel{
		InstituteName:    in.InstituteName,
		InstituteAddress: in.InstituteAddress,
		InstitutePhone:   in.InstitutePhone,
		InstituteEmail:   in.InstituteEmail,
		InstituteIsActive: true,
	}
}

func ApplyInstituteUpdate(m *institute.InstituteModel, in InstituteUpdateDTO) {
	if in.InstituteName != nil {
		m.InstituteName = *in.InstituteName
	}
	if in.InstituteAddress != nil {
		m.InstituteAddress = in.InstituteAddress
	}
	if in.InstitutePhone != nil {
		m.InstitutePhone = in.InstitutePhone
	}
	if in.InstituteEmail != nil {
		m.InstituteEmail = in.InstituteEmail
	}
	if in.InstituteIsActive != nil {
		m.InstituteIsActive = *in.InstituteIsActive
	}
}

func ToInstituteResponse(m institute.InstituteModel) InstituteResponse {
	return InstituteResponse{
		InstituteID:       m.InstituteID,
		InstituteName:     m.InstituteName,
		InstituteAddress:  m.InstituteAddress,
		InstitutePhone:    m.InstitutePhone,
		InstituteEmail:    m.InstituteEmail,
		InstituteIsActive: m.InstituteIsActive,
	}
}

func ToInstituteResponses(list []institute.InstituteModel) []InstituteResponse {
	out := make([]InstituteResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToInstituteResponse(m))
	}
	return out
}
