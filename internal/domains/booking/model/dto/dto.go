package dto

import (
	"time"

	"gomoto/internal/domains/booking/model"
	"gomoto/internal/domains/booking/policy"
	userDto "gomoto/internal/domains/user/model/dto"
	vehicleModel "gomoto/internal/domains/vehicle/model"
	vehicleDto "gomoto/internal/domains/vehicle/model/dto"
	"gomoto/shared"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	gModel "gomoto/shared/model"
	"gomoto/shared/timezone"

	"github.com/google/uuid"
)

type ChargeRequest struct {
	Description string  `json:"description" validate:"required,max=100"`
	Amount      float64 `json:"amount"      validate:"gte=0"`
}

type CreateBookingRequest struct {
	VehicleID         string           `json:"vehicle_id"                   validate:"required"`
	PickupDate        string           `json:"pickup_date"                  validate:"required"`
	DropoffDate       string           `json:"dropoff_date"                 validate:"required"`
	RentalDays        int              `json:"rental_days"                  validate:"required,gte=1"`
	RentalHours       int              `json:"rental_hours"                 validate:"gte=0"`
	InsuranceType     *string          `json:"insurance_type,omitempty"     validate:"omitempty,oneof=basic standard premium"`
	AdditionalCharges []ChargeRequest  `json:"additional_charges,omitempty" validate:"omitempty,dive"`
	PickupLocation    *gModel.Location `json:"pickup_location,omitempty"`
	DropoffLocation   *gModel.Location `json:"dropoff_location,omitempty"`
	PaymentMethod     *string          `json:"payment_method,omitempty"     validate:"omitempty,oneof=credit_card debit_card upi wallet"`
}

// MissingField names the first required field left empty, or returns an empty string.
func (c *CreateBookingRequest) MissingField() string {
	switch {
	case c.VehicleID == constant.Empty:
		return "vehicle_id"
	case c.PickupDate == constant.Empty:
		return "pickup_date"
	case c.DropoffDate == constant.Empty:
		return "dropoff_date"
	case c.RentalDays < 1:
		return "rental_days"
	default:
		return constant.Empty
	}
}

// Dates parses the pickup and dropoff values, see timezone.ParseDateTime for accepted layouts.
func (c *CreateBookingRequest) Dates() (pickup, dropoff time.Time, err error) {
	pickup, err = timezone.ParseDateTime(c.PickupDate)
	if err != nil {
		return pickup, dropoff, err
	}

	dropoff, err = timezone.ParseDateTime(c.DropoffDate)

	return pickup, dropoff, err
}

// ToModel prices the booking against the vehicle rates. The reference is left to the caller.
func (c *CreateBookingRequest) ToModel(userID string, vehicle vehicleModel.Vehicle, pickup, dropoff time.Time) model.Booking {
	charges := model.Charges{}
	for _, charge := range c.AdditionalCharges {
		charges = append(charges, model.Charge{Description: charge.Description, Amount: charge.Amount})
	}

	insuranceType := constant.Empty
	if c.InsuranceType != nil {
		insuranceType = *c.InsuranceType
	}

	quote := policy.Price(policy.PriceInput{
		PricePerDay:       vehicle.PricePerDay,
		PricePerHour:      vehicle.PricePerHour,
		RentalDays:        c.RentalDays,
		RentalHours:       c.RentalHours,
		InsuranceType:     insuranceType,
		AdditionalCharges: charges.Amounts(),
	})

	now := timezone.Now()

	return model.Booking{
		ID:                uuid.NewString(),
		UserID:            userID,
		VehicleID:         vehicle.ID,
		PickupDate:        pickup,
		DropoffDate:       dropoff,
		RentalDays:        c.RentalDays,
		RentalHours:       c.RentalHours,
		DailyRate:         vehicle.PricePerDay,
		HourlyRate:        vehicle.PricePerHour,
		InsuranceType:     c.InsuranceType,
		InsurancePrice:    quote.InsurancePrice,
		AdditionalCharges: charges,
		TotalAmount:       quote.TotalAmount,
		AdvancePayment:    quote.AdvancePayment,
		PickupLocation:    c.PickupLocation,
		DropoffLocation:   c.DropoffLocation,
		PaymentMethod:     c.PaymentMethod,
		BookingStatus:     model.StatusPending,
		PaymentStatus:     model.PaymentPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateBookingStatusRequest struct {
	BookingStatus *string `db:"booking_status" json:"booking_status,omitempty" validate:"omitempty,oneof=pending confirmed active completed cancelled"`
	PaymentStatus *string `db:"payment_status" json:"payment_status,omitempty" validate:"omitempty,oneof=pending completed cancelled"`
}

func (u UpdateBookingStatusRequest) IsEmpty() bool {
	return u.BookingStatus == nil && u.PaymentStatus == nil
}

type CancelBookingRequest struct {
	Reason string `json:"cancellation_reason" validate:"omitempty,max=500"`
}

type FeedbackRequest struct {
	Rating  *float64 `json:"rating"            validate:"required,gte=0,lte=5"`
	Comment *string  `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type FeedbackResponse struct {
	Rating      float64 `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
	SubmittedAt string  `json:"submitted_at"`
}

type BookingResponse struct {
	ID                 string                    `json:"id"`
	BookingReference   string                    `json:"booking_reference"`
	UserID             string                    `json:"user_id"`
	VehicleID          string                    `json:"vehicle_id"`
	Vehicle            vehicleDto.VehicleSummary `json:"vehicle"`
	User               userDto.UserSummary       `json:"user"`
	PickupDate         string                    `json:"pickup_date"`
	DropoffDate        string                    `json:"dropoff_date"`
	RentalDays         int                       `json:"rental_days"`
	RentalHours        int                       `json:"rental_hours"`
	DailyRate          float64                   `json:"daily_rate"`
	HourlyRate         float64                   `json:"hourly_rate"`
	InsuranceType      *string                   `json:"insurance_type,omitempty"`
	InsurancePrice     float64                   `json:"insurance_price"`
	AdditionalCharges  model.Charges             `json:"additional_charges"`
	TotalAmount        float64                   `json:"total_amount"`
	AdvancePayment     float64                   `json:"advance_payment"`
	PickupLocation     *gModel.Location          `json:"pickup_location,omitempty"`
	DropoffLocation    *gModel.Location          `json:"dropoff_location,omitempty"`
	PaymentMethod      *string                   `json:"payment_method,omitempty"`
	BookingStatus      string                    `json:"booking_status"`
	PaymentStatus      string                    `json:"payment_status"`
	CancellationReason *string                   `json:"cancellation_reason,omitempty"`
	CancellationDate   *string                   `json:"cancellation_date,omitempty"`
	RefundAmount       *float64                  `json:"refund_amount,omitempty"`
	Feedback           *FeedbackResponse         `json:"feedback,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.BookingReference = m.BookingReference
	r.UserID = m.UserID
	r.VehicleID = m.VehicleID
	r.Vehicle = vehicleDto.VehicleSummary{
		ID:                 m.VehicleID,
		RegistrationNumber: m.VehicleRegistrationNumber,
		Brand:              m.VehicleBrand,
		Model:              m.VehicleModel,
		Type:               m.VehicleType,
		Images:             nonNil(m.VehicleImages),
	}
	r.User = userDto.UserSummary{
		ID:       m.UserID,
		Username: m.UserUsername,
		Email:    m.UserEmail,
		FullName: m.UserFullName,
		Phone:    m.UserPhone,
	}
	r.PickupDate = timezone.Format(m.PickupDate, constant.DateFormat)
	r.DropoffDate = timezone.Format(m.DropoffDate, constant.DateFormat)
	r.RentalDays = m.RentalDays
	r.RentalHours = m.RentalHours
	r.DailyRate = m.DailyRate
	r.HourlyRate = m.HourlyRate
	r.InsuranceType = m.InsuranceType
	r.InsurancePrice = m.InsurancePrice
	r.AdditionalCharges = m.AdditionalCharges
	r.TotalAmount = m.TotalAmount
	r.AdvancePayment = m.AdvancePayment
	r.PickupLocation = m.PickupLocation
	r.DropoffLocation = m.DropoffLocation
	r.PaymentMethod = m.PaymentMethod
	r.BookingStatus = m.BookingStatus
	r.PaymentStatus = m.PaymentStatus
	r.CancellationReason = m.CancellationReason
	r.RefundAmount = m.RefundAmount
	r.Metadata.FromModel(m.Metadata)

	if r.AdditionalCharges == nil {
		r.AdditionalCharges = model.Charges{}
	}

	if m.CancellationDate != nil {
		cancelled := timezone.Format(*m.CancellationDate, constant.DateFormat)
		r.CancellationDate = &cancelled
	}

	if m.FeedbackRating != nil {
		r.Feedback = &FeedbackResponse{
			Rating:  *m.FeedbackRating,
			Comment: m.FeedbackComment,
		}

		if m.FeedbackSubmittedAt != nil {
			r.Feedback.SubmittedAt = timezone.Format(*m.FeedbackSubmittedAt, constant.DateFormat)
		}
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

type StatsResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

func (r *StatsResponse) FromModel(m model.Stats) {
	r.TotalBookings = m.TotalBookings
	r.ConfirmedBookings = m.ConfirmedBookings
	r.CompletedBookings = m.CompletedBookings
	r.CancelledBookings = m.CancelledBookings
	r.TotalRevenue = m.TotalRevenue
}
