package dto

import (
	"mime/multipart"
	"strings"

	"gomoto/internal/domains/vehicle/model"
	"gomoto/shared"
	gDto "gomoto/shared/dto"
	gModel "gomoto/shared/model"
	"gomoto/shared/timezone"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	RegistrationNumber string           `json:"registration_number" validate:"required,min=4,max=20"`
	Brand              string           `json:"brand"               validate:"required,max=50"`
	Model              string           `json:"model"               validate:"required,max=50"`
	Year               int              `json:"year"                validate:"required,gte=1990,lte=2100"`
	Type               string           `json:"type"                validate:"required,oneof=bike car truck jcb"`
	Color              *string          `json:"color,omitempty"     validate:"omitempty,max=30"`
	FuelType           string           `json:"fuel_type"           validate:"required,oneof=petrol diesel electric hybrid cng"`
	Transmission       *string          `json:"transmission"        validate:"omitempty,oneof=manual automatic"`
	SeatingCapacity    int              `json:"seating_capacity"    validate:"required,gte=1"`
	Mileage            *float64         `json:"mileage,omitempty"   validate:"omitempty,gte=0"`
	PricePerDay        *float64         `json:"price_per_day"       validate:"required,gte=0"`
	PricePerHour       *float64         `json:"price_per_hour"      validate:"required,gte=0"`
	InsuranceType      string           `json:"insurance_type"      validate:"omitempty,oneof=basic standard premium"`
	IsAvailable        *bool            `json:"is_available"`
	Status             string           `json:"status"              validate:"omitempty,oneof=active maintenance inactive"`
	Location           *gModel.Location `json:"location,omitempty"`
	Features           []string         `json:"features,omitempty"  validate:"omitempty,dive,max=50"`
	Images             []string         `json:"images,omitempty"    validate:"omitempty,dive,url"`
	Description        *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
}

func (c *CreateVehicleRequest) ToModel(user string) model.Vehicle {
	insuranceType := c.InsuranceType
	if insuranceType == "" {
		insuranceType = model.InsuranceBasic
	}

	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	isAvailable := true
	if c.IsAvailable != nil {
		isAvailable = *c.IsAvailable
	}

	now := timezone.Now()

	return model.Vehicle{
		ID:                 uuid.NewString(),
		RegistrationNumber: strings.ToUpper(strings.TrimSpace(c.RegistrationNumber)),
		Brand:              c.Brand,
		Model:              c.Model,
		Year:               c.Year,
		Type:               c.Type,
		Color:              c.Color,
		FuelType:           c.FuelType,
		Transmission:       c.Transmission,
		SeatingCapacity:    c.SeatingCapacity,
		Mileage:            c.Mileage,
		PricePerDay:        *c.PricePerDay,
		PricePerHour:       *c.PricePerHour,
		InsuranceType:      insuranceType,
		IsAvailable:        isAvailable,
		Status:             status,
		Location:           c.Location,
		Features:           c.Features,
		Images:             c.Images,
		Description:        c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateVehicleRequest leaves out registration_number, total_bookings and rating.
type UpdateVehicleRequest struct {
	Brand           *string          `db:"brand"            json:"brand,omitempty"            validate:"omitempty,max=50"`
	Model           *string          `db:"model"            json:"model,omitempty"            validate:"omitempty,max=50"`
	Year            *int             `db:"year"             json:"year,omitempty"             validate:"omitempty,gte=1990,lte=2100"`
	Type            *string          `db:"type"             json:"type,omitempty"             validate:"omitempty,oneof=bike car truck jcb"`
	Color           *string          `db:"color"            json:"color,omitempty"            validate:"omitempty,max=30"`
	FuelType        *string          `db:"fuel_type"        json:"fuel_type,omitempty"        validate:"omitempty,oneof=petrol diesel electric hybrid cng"`
	Transmission    *string          `db:"transmission"     json:"transmission,omitempty"     validate:"omitempty,oneof=manual automatic"`
	SeatingCapacity *int             `db:"seating_capacity" json:"seating_capacity,omitempty" validate:"omitempty,gte=1"`
	Mileage         *float64         `db:"mileage"          json:"mileage,omitempty"          validate:"omitempty,gte=0"`
	PricePerDay     *float64         `db:"price_per_day"    json:"price_per_day,omitempty"    validate:"omitempty,gte=0"`
	PricePerHour    *float64         `db:"price_per_hour"   json:"price_per_hour,omitempty"   validate:"omitempty,gte=0"`
	InsuranceType   *string          `db:"insurance_type"   json:"insurance_type,omitempty"   validate:"omitempty,oneof=basic standard premium"`
	Status          *string          `db:"status"           json:"status,omitempty"           validate:"omitempty,oneof=active maintenance inactive"`
	Location        *gModel.Location `db:"location"         json:"location,omitempty"`
	Features        []string         `db:"-"                json:"features,omitempty"         validate:"omitempty,dive,max=50"`
	Description     *string          `db:"description"      json:"description,omitempty"      validate:"omitempty,max=1000"`
}

func (u UpdateVehicleRequest) IsEmpty() bool {
	return u.Brand == nil && u.Model == nil && u.Year == nil && u.Type == nil && u.Color == nil &&
		u.FuelType == nil && u.Transmission == nil && u.SeatingCapacity == nil && u.Mileage == nil &&
		u.PricePerDay == nil && u.PricePerHour == nil && u.InsuranceType == nil && u.Status == nil &&
		u.Location == nil && u.Features == nil && u.Description == nil
}

type ToggleAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL    string   `json:"url"`
	Images []string `json:"images"`
}

type VehicleResponse struct {
	ID                 string           `json:"id"`
	RegistrationNumber string           `json:"registration_number"`
	Brand              string           `json:"brand"`
	Model              string           `json:"model"`
	Year               int              `json:"year"`
	Type               string           `json:"type"`
	Color              *string          `json:"color,omitempty"`
	FuelType           string           `json:"fuel_type"`
	Transmission       *string          `json:"transmission,omitempty"`
	SeatingCapacity    int              `json:"seating_capacity"`
	Mileage            *float64         `json:"mileage,omitempty"`
	PricePerDay        float64          `json:"price_per_day"`
	PricePerHour       float64          `json:"price_per_hour"`
	InsuranceType      string           `json:"insurance_type"`
	IsAvailable        bool             `json:"is_available"`
	Status             string           `json:"status"`
	Rating             float64          `json:"rating"`
	TotalBookings      int              `json:"total_bookings"`
	Location           *gModel.Location `json:"location,omitempty"`
	Features           []string         `json:"features"`
	Images             []string         `json:"images"`
	Description        *string          `json:"description,omitempty"`
	gDto.Metadata
}

func (r *VehicleResponse) FromModel(m model.Vehicle) {
	r.ID = m.ID
	r.RegistrationNumber = m.RegistrationNumber
	r.Brand = m.Brand
	r.Model = m.Model
	r.Year = m.Year
	r.Type = m.Type
	r.Color = m.Color
	r.FuelType = m.FuelType
	r.Transmission = m.Transmission
	r.SeatingCapacity = m.SeatingCapacity
	r.Mileage = m.Mileage
	r.PricePerDay = m.PricePerDay
	r.PricePerHour = m.PricePerHour
	r.InsuranceType = m.InsuranceType
	r.IsAvailable = m.IsAvailable
	r.Status = m.Status
	r.Rating = m.Rating
	r.TotalBookings = m.TotalBookings
	r.Location = m.Location
	r.Features = nonNil(m.Features)
	r.Images = nonNil(m.Images)
	r.Description = m.Description
	r.Metadata.FromModel(m.Metadata)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

// VehicleSummary is embedded in booking responses.
type VehicleSummary struct {
	ID                 string   `json:"id"`
	RegistrationNumber string   `json:"registration_number"`
	Brand              string   `json:"brand"`
	Model              string   `json:"model"`
	Type               string   `json:"type"`
	Images             []string `json:"images"`
}

func (s *VehicleSummary) FromModel(m model.Vehicle) {
	s.ID = m.ID
	s.RegistrationNumber = m.RegistrationNumber
	s.Brand = m.Brand
	s.Model = m.Model
	s.Type = m.Type
	s.Images = nonNil(m.Images)
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetVehiclesResponse) FromModels(models []model.Vehicle, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehicles = make([]VehicleResponse, len(models))
	for i, m := range models {
		r.Vehicles[i].FromModel(m)
	}
}
