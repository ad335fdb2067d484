package model

import (
	"slices"

	"gomoto/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID                 = "id"
	FieldRegistrationNumber = "registration_number"
	FieldBrand              = "brand"
	FieldModel              = "model"
	FieldType               = "type"
	FieldIsAvailable        = "is_available"
	FieldStatus             = "status"
	FieldRating             = "rating"
	FieldTotalBookings      = "total_bookings"
	FieldFeatures           = "features"
	FieldImages             = "images"
)

const (
	CacheGetVehicle    = "vehicle:get"
	CacheGetAllVehicle = "vehicle:gets"
	CacheCountVehicle  = "vehicle:count"
)

const (
	TypeBike  = "bike"
	TypeCar   = "car"
	TypeTruck = "truck"
	TypeJCB   = "jcb"
)

const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
)

const (
	InsuranceBasic    = "basic"
	InsuranceStandard = "standard"
	InsurancePremium  = "premium"
)

var Types = []string{TypeBike, TypeCar, TypeTruck, TypeJCB}

func IsValidType(vehicleType string) bool {
	return slices.Contains(Types, vehicleType)
}

type Vehicle struct {
	ID                 string          `db:"id"`
	RegistrationNumber string          `db:"registration_number"`
	Brand              string          `db:"brand"`
	Model              string          `db:"model"`
	Year               int             `db:"year"`
	Type               string          `db:"type"`
	Color              *string         `db:"color"`
	FuelType           string          `db:"fuel_type"`
	Transmission       *string         `db:"transmission"`
	SeatingCapacity    int             `db:"seating_capacity"`
	Mileage            *float64        `db:"mileage"`
	PricePerDay        float64         `db:"price_per_day"`
	PricePerHour       float64         `db:"price_per_hour"`
	InsuranceType      string          `db:"insurance_type"`
	IsAvailable        bool            `db:"is_available"`
	Status             string          `db:"status"`
	Rating             float64         `db:"rating"`
	TotalBookings      int             `db:"total_bookings"`
	Location           *model.Location `db:"location"`
	Features           pq.StringArray  `db:"features"`
	Images             pq.StringArray  `db:"images"`
	Description        *string         `db:"description"`
	model.Metadata
}

// DisplayName is the label used in mails and booking summaries, e.g. "Honda City".
func (v Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model
}
