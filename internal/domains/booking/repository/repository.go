package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"gomoto/infras/otel"
	"gomoto/infras/postgres"
	"gomoto/internal/domains/booking/model"
	vehicleModel "gomoto/internal/domains/vehicle/model"
	"gomoto/shared"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/logger"
	gRepo "gomoto/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	queryNextReference          = "SELECT nextval('booking_reference_seq')"
	queryIncrementTotalBookings = "UPDATE vehicles SET total_bookings = total_bookings + 1 WHERE id = $1"
	queryVehicleRatings         = "SELECT feedback_rating FROM bookings WHERE vehicle_id = $1 AND feedback_rating IS NOT NULL"
)

// Feedback is written by SaveFeedback. Vehicle receives every rating of the vehicle, the
// new one included, and returns the vehicle columns to update.
type Feedback struct {
	BookingID string
	VehicleID string
	Booking   map[string]any
	Vehicle   func(ratings []float64) map[string]any
}

type Booking interface {
	// Create inserts the booking and bumps the vehicle's total_bookings in one transaction.
	Create(ctx context.Context, booking model.Booking) error
	NextReferenceSequence(ctx context.Context) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetPrimary(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Sum(ctx context.Context, column string, filter gDto.FilterGroup) (float64, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	// SaveFeedback writes the feedback and the recomputed vehicle rating in one transaction.
	SaveFeedback(ctx context.Context, feedback Feedback) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	vehicles gRepo.Repository[vehicleModel.Vehicle]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		vehicles:   gRepo.NewRepository[vehicleModel.Vehicle](vehicleModel.EntityName, vehicleModel.TableName, vehicleModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		scope.SetAttribute(constant.OtelQueryAttributeKey, queryIncrementTotalBookings)

		if _, err := tx.ExecContext(ctx, queryIncrementTotalBookings, booking.VehicleID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to increment %s total bookings: %w", vehicleModel.EntityName, err)
		}

		return nil
	})
}

func (r *repositoryImpl) NextReferenceSequence(ctx context.Context) (sequence int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextReferenceSequence")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryNextReference)

	if err = r.db.Write.GetContext(ctx, &sequence, queryNextReference); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get next booking reference: %w", err)
	}

	return sequence, nil
}

func (r *repositoryImpl) SaveFeedback(ctx context.Context, feedback Feedback) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SaveFeedback")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := r.UpdateTx(ctx, tx, feedback.Booking, shared.FilterByID(feedback.BookingID, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to save booking feedback: %w", err)
		}

		scope.SetAttribute(constant.OtelQueryAttributeKey, queryVehicleRatings)

		ratings := []float64{}
		if err = tx.SelectContext(ctx, &ratings, queryVehicleRatings, feedback.VehicleID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to get vehicle ratings: %w", err)
		}

		err = r.vehicles.UpdateTx(ctx, tx, feedback.Vehicle(ratings), shared.FilterByID(feedback.VehicleID, vehicleModel.FieldID, vehicleModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to update %s rating: %w", vehicleModel.EntityName, err)
		}

		return nil
	})
}

