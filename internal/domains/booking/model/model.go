package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"gomoto/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldBookingReference    = "booking_reference"
	FieldUserID              = "user_id"
	FieldVehicleID           = "vehicle_id"
	FieldBookingStatus       = "booking_status"
	FieldPaymentStatus       = "payment_status"
	FieldTotalAmount         = "total_amount"
	FieldCancellationReason  = "cancellation_reason"
	FieldCancellationDate    = "cancellation_date"
	FieldRefundAmount        = "refund_amount"
	FieldFeedbackRating      = "feedback_rating"
	FieldFeedbackComment     = "feedback_comment"
	FieldFeedbackSubmittedAt = "feedback_submitted_at"
)

const (
	CacheGetBooking    = "booking:get"
	CacheGetAllBooking = "booking:gets"
	CacheCountBooking  = "booking:count"
	CacheStatsBooking  = "booking:stats"
)

const ReferencePrefix = "GOMOTO"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentCancelled = "cancelled"
)

var (
	BookingStatuses = []string{StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled}
	PaymentStatuses = []string{PaymentPending, PaymentCompleted, PaymentCancelled}
)

const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodUPI        = "upi"
	PaymentMethodWallet     = "wallet"
)

// Charge is one line of the additional charges list.
type Charge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Charges is stored as a JSONB array, order preserved.
type Charges []Charge

func (c Charges) Value() (driver.Value, error) {
	if c == nil {
		c = Charges{}
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal additional charges: %w", err)
	}

	return payload, nil
}

func (c *Charges) Scan(src any) error {
	return model.ScanJSON(src, c)
}

func (c Charges) Amounts() []float64 {
	amounts := make([]float64, len(c))
	for i, charge := range c {
		amounts[i] = charge.Amount
	}

	return amounts
}

// VehicleInfo is joined from the vehicles table on read.
type VehicleInfo struct {
	VehicleRegistrationNumber string         `column:"registration_number" db:"vehicle_registration_number" table:"vehicles"`
	VehicleBrand              string         `column:"brand"               db:"vehicle_brand"               table:"vehicles"`
	VehicleModel              string         `column:"model"               db:"vehicle_model"               table:"vehicles"`
	VehicleType               string         `column:"type"                db:"vehicle_type"                table:"vehicles"`
	VehicleImages             pq.StringArray `column:"images"              db:"vehicle_images"              table:"vehicles"`
}

// UserInfo is joined from the users table on read.
type UserInfo struct {
	UserUsername string  `column:"username"  db:"user_username"  table:"users"`
	UserEmail    string  `column:"email"     db:"user_email"     table:"users"`
	UserFullName *string `column:"full_name" db:"user_full_name" table:"users"`
	UserPhone    *string `column:"phone"     db:"user_phone"     table:"users"`
}

type Booking struct {
	ID                  string          `db:"id"`
	BookingReference    string          `db:"booking_reference"`
	UserID              string          `db:"user_id"`
	VehicleID           string          `db:"vehicle_id"`
	PickupDate          time.Time       `db:"pickup_date"`
	DropoffDate         time.Time       `db:"dropoff_date"`
	RentalDays          int             `db:"rental_days"`
	RentalHours         int             `db:"rental_hours"`
	DailyRate           float64         `db:"daily_rate"`
	HourlyRate          float64         `db:"hourly_rate"`
	InsuranceType       *string         `db:"insurance_type"`
	InsurancePrice      float64         `db:"insurance_price"`
	AdditionalCharges   Charges         `db:"additional_charges"`
	TotalAmount         float64         `db:"total_amount"`
	AdvancePayment      float64         `db:"advance_payment"`
	PickupLocation      *model.Location `db:"pickup_location"`
	DropoffLocation     *model.Location `db:"dropoff_location"`
	PaymentMethod       *string         `db:"payment_method"`
	BookingStatus       string          `db:"booking_status"`
	PaymentStatus       string          `db:"payment_status"`
	CancellationReason  *string         `db:"cancellation_reason"`
	CancellationDate    *time.Time      `db:"cancellation_date"`
	RefundAmount        *float64        `db:"refund_amount"`
	FeedbackRating      *float64        `db:"feedback_rating"`
	FeedbackComment     *string         `db:"feedback_comment"`
	FeedbackSubmittedAt *time.Time      `db:"feedback_submitted_at"`
	VehicleInfo
	UserInfo
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN vehicles ON vehicles.id = bookings.vehicle_id JOIN users ON users.id = bookings.user_id"
}

func IsValidBookingStatus(status string) bool {
	return slices.Contains(BookingStatuses, status)
}

func IsValidPaymentStatus(status string) bool {
	return slices.Contains(PaymentStatuses, status)
}

// IsClosed reports whether the booking can no longer be cancelled.
func (b Booking) IsClosed() bool {
	return b.BookingStatus == StatusCompleted || b.BookingStatus == StatusCancelled
}

// Reference formats a booking reference such as GOMOTO20260314093000000042.
func Reference(now time.Time, sequence int64) string {
	return fmt.Sprintf("%s%s%06d", ReferencePrefix, now.Format("20060102150405"), sequence)
}

type Stats struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}
