package dto

import (
	"time"

	"gomoto/internal/domains/user/model"
	"gomoto/shared"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/timezone"
)

type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	FullName      *string `json:"full_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	LicenseExpiry *string `json:"license_expiry,omitempty"`
	Active        bool    `json:"active"`
	LastLogin     *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Username = m.Username
	r.Email = m.Email
	r.Role = m.Role
	r.FullName = m.FullName
	r.Phone = m.Phone
	r.Address = m.Address
	r.LicenseNumber = m.LicenseNumber
	r.LicenseExpiry = formatOptional(m.LicenseExpiry, constant.DateOnlyFormat)
	r.Active = m.Active
	r.LastLogin = formatOptional(m.LastLogin, constant.DateFormat)
	r.Metadata.FromModel(m.Metadata)
}

func formatOptional(value *time.Time, layout string) *string {
	if value == nil {
		return nil
	}

	formatted := timezone.Format(*value, layout)

	return &formatted
}

// UserSummary is embedded in other resources, e.g. a booking.
type UserSummary struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (s *UserSummary) FromModel(m model.User) {
	s.ID = m.ID
	s.Username = m.Username
	s.Email = m.Email
	s.FullName = m.FullName
	s.Phone = m.Phone
}

type UpdateProfileRequest struct {
	FullName      *string `json:"full_name,omitempty"      validate:"omitempty,min=2,max=100"`
	Phone         *string `json:"phone,omitempty"          validate:"omitempty,e164"`
	Address       *string `json:"address,omitempty"        validate:"omitempty,max=255"`
	LicenseNumber *string `json:"license_number,omitempty" validate:"omitempty,alphanum,min=5,max=20"`
	LicenseExpiry *string `json:"license_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FullName == nil && r.Phone == nil && r.Address == nil && r.LicenseNumber == nil && r.LicenseExpiry == nil
}

// ToUpdate converts the request into the db-tagged shape consumed by shared.TransformFields.
func (r UpdateProfileRequest) ToUpdate() (UpdateProfile, error) {
	update := UpdateProfile{
		FullName:      r.FullName,
		Phone:         r.Phone,
		Address:       r.Address,
		LicenseNumber: r.LicenseNumber,
	}

	if r.LicenseExpiry != nil {
		expiry, err := timezone.Parse(constant.DateOnlyFormat, *r.LicenseExpiry)
		if err != nil {
			return update, err
		}

		update.LicenseExpiry = &expiry
	}

	return update, nil
}

type UpdateProfile struct {
	FullName      *string    `db:"full_name"`
	Phone         *string    `db:"phone"`
	Address       *string    `db:"address"`
	LicenseNumber *string    `db:"license_number"`
	LicenseExpiry *time.Time `db:"license_expiry"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
