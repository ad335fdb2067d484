package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"gomoto/config"
	"gomoto/infras/otel/mocks"
	bookingMocks "gomoto/internal/domains/booking/mocks"
	"gomoto/internal/domains/booking/model"
	"gomoto/internal/domains/booking/model/dto"
	"gomoto/internal/domains/booking/repository"
	"gomoto/internal/domains/booking/service"
	vehicleMocks "gomoto/internal/domains/vehicle/mocks"
	vehicleModel "gomoto/internal/domains/vehicle/model"
	cacheMocks "gomoto/shared/cache/mocks"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"
	"gomoto/shared/timezone"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	ownerID    = "user-1"
	strangerID = "user-2"
	bookingID  = "booking-1"
	vehicleID  = "vehicle-1"
)

type fixture struct {
	svc         service.Booking
	repo        *bookingMocks.MockBooking
	vehicleRepo *vehicleMocks.MockVehicle
	cache       *cacheMocks.MockRedisCache
	publisher   *bookingMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        bookingMocks.NewMockBooking(ctrl),
		vehicleRepo: vehicleMocks.NewMockVehicle(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		publisher:   bookingMocks.NewMockPublisher(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Cache.StatsTTL = 60

	f.svc = service.New(f.repo, f.vehicleRepo, cfg, f.cache, mocks.NewOtel(), f.publisher)

	return f
}

func userContext(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func ptr[T any](v T) *T {
	return &v
}

func availableVehicle() vehicleModel.Vehicle {
	return vehicleModel.Vehicle{
		ID:           vehicleID,
		Brand:        "Honda",
		Model:        "City",
		Type:         vehicleModel.TypeCar,
		PricePerDay:  1000,
		PricePerHour: 100,
		IsAvailable:  true,
		Status:       vehicleModel.StatusActive,
	}
}

func storedBooking(status string, pickupIn time.Duration) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:               bookingID,
		BookingReference: "GOMOTO20260101100000000001",
		UserID:           ownerID,
		VehicleID:        vehicleID,
		PickupDate:       now.Add(pickupIn),
		DropoffDate:      now.Add(pickupIn + 72*time.Hour),
		RentalDays:       3,
		DailyRate:        1000,
		TotalAmount:      1000,
		BookingStatus:    status,
		PaymentStatus:    model.PaymentPending,
		VehicleInfo:      model.VehicleInfo{VehicleBrand: "Honda", VehicleModel: "City", VehicleType: vehicleModel.TypeCar},
		UserInfo:         model.UserInfo{UserUsername: "rider", UserEmail: "rider@gomoto.test"},
	}
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		VehicleID:     vehicleID,
		PickupDate:    "2026-05-01T10:00:00Z",
		DropoffDate:   "2026-05-04T10:00:00Z",
		RentalDays:    3,
		InsuranceType: ptr("standard"),
	}

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "missing vehicle id",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.VehicleID = ""

				return req
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing rental days",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.RentalDays = 0

				return req
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "vehicle not found",
			req:  func() dto.CreateBookingRequest { return validReq },
			setupMock: func(f fixture) {
				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(vehicleModel.Vehicle{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "vehicle not available",
			req:  func() dto.CreateBookingRequest { return validReq },
			setupMock: func(f fixture) {
				vehicle := availableVehicle()
				vehicle.IsAvailable = false

				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(vehicle, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "pickup equals dropoff",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.DropoffDate = req.PickupDate

				return req
			},
			setupMock: func(f fixture) {
				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableVehicle(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "pickup after dropoff",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.PickupDate, req.DropoffDate = req.DropoffDate, req.PickupDate

				return req
			},
			setupMock: func(f fixture) {
				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableVehicle(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.PickupDate = "next monday"

				return req
			},
			setupMock: func(f fixture) {
				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableVehicle(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "successful creation",
			req:  func() dto.CreateBookingRequest { return validReq },
			setupMock: func(f fixture) {
				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableVehicle(), nil)
				f.repo.EXPECT().NextReferenceSequence(gomock.Any()).Return(int64(42), nil)
				f.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b model.Booking) error {
						assert.Equal(t, 3300.0, b.TotalAmount)
						assert.Equal(t, 300.0, b.InsurancePrice)
						assert.Equal(t, 660.0, b.AdvancePayment)
						assert.Equal(t, 1000.0, b.DailyRate)
						assert.Equal(t, 100.0, b.HourlyRate)
						assert.Equal(t, 0, b.RentalHours)
						assert.Equal(t, model.Charges{}, b.AdditionalCharges)
						assert.Equal(t, model.StatusPending, b.BookingStatus)
						assert.Equal(t, model.PaymentPending, b.PaymentStatus)
						assert.Equal(t, ownerID, b.UserID)
						assert.True(t, strings.HasPrefix(b.BookingReference, "GOMOTO"))
						assert.True(t, strings.HasSuffix(b.BookingReference, "000042"))

						return nil
					})

				created := storedBooking(model.StatusPending, 72*time.Hour)
				created.TotalAmount = 3300

				f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(created, nil)
			},
		},
		{
			name: "insert failure",
			req:  func() dto.CreateBookingRequest { return validReq },
			setupMock: func(f fixture) {
				f.vehicleRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableVehicle(), nil)
				f.repo.EXPECT().NextReferenceSequence(gomock.Any()).Return(int64(1), nil)
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Create(userContext(ownerID, constant.RoleUser), tt.req())

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingID, res.ID)
			assert.Equal(t, "Honda", res.Vehicle.Brand)
			assert.Equal(t, "rider", res.User.Username)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		wantCode int
	}{
		{name: "owner", ctx: userContext(ownerID, constant.RoleUser)},
		{name: "admin", ctx: userContext("admin-1", constant.RoleAdmin)},
		{name: "superadmin", ctx: userContext("root", constant.RoleSuperAdmin)},
		{name: "someone else", ctx: userContext(strangerID, constant.RoleUser), wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusPending, 72*time.Hour), nil)

			res, err := f.svc.Get(tt.ctx, bookingID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Empty(t, res.ID)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingID, res.ID)
		})
	}
}

func TestBookingService_Get_CachedStillChecksOwner(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), "booking:get:"+bookingID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*dto.BookingResponse) = dto.BookingResponse{ID: bookingID, UserID: ownerID}

			return nil
		})

	_, err := f.svc.Get(userContext(strangerID, constant.RoleUser), bookingID)

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestBookingService_GetUserBookings(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetUserBookings(userContext(ownerID, constant.RoleUser), gDto.QueryParams{Page: 1, Limit: 10}, "lost")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("scoped to caller", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "bookings.user_id")
				assert.Contains(t, where, "bookings.booking_status")
				assert.Equal(t, ownerID, args[model.FieldUserID])

				return 1, nil
			})
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{storedBooking(model.StatusConfirmed, 0)}, nil)

		res, err := f.svc.GetUserBookings(userContext(ownerID, constant.RoleUser), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusConfirmed)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateBookingStatusRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:     "empty request",
			req:      dto.UpdateBookingStatusRequest{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown booking status",
			req:      dto.UpdateBookingStatusRequest{BookingStatus: ptr("archived")},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown payment status",
			req:      dto.UpdateBookingStatusRequest{PaymentStatus: ptr("refunded")},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingStatusRequest{BookingStatus: ptr(model.StatusConfirmed)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "completed back to pending is allowed",
			req:  dto.UpdateBookingStatusRequest{BookingStatus: ptr(model.StatusPending), PaymentStatus: ptr(model.PaymentCompleted)},
			setupMock: func(f fixture) {
				updated := storedBooking(model.StatusPending, 72*time.Hour)
				updated.PaymentStatus = model.PaymentCompleted

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCompleted, 72*time.Hour), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusPending, fields[model.FieldBookingStatus])
						assert.Equal(t, model.PaymentCompleted, fields[model.FieldPaymentStatus])

						return nil
					})
				f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(updated, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.UpdateStatus(userContext("admin-1", constant.RoleAdmin), tt.req, bookingID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusPending, res.BookingStatus)
			assert.Equal(t, model.PaymentCompleted, res.PaymentStatus)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		stored     model.Booking
		wantRefund float64
		wantCode   int
	}{
		{
			name:       "72 hours before pickup",
			ctx:        userContext(ownerID, constant.RoleUser),
			stored:     storedBooking(model.StatusConfirmed, 72*time.Hour),
			wantRefund: 800,
		},
		{
			name:       "36 hours before pickup",
			ctx:        userContext(ownerID, constant.RoleUser),
			stored:     storedBooking(model.StatusPending, 36*time.Hour),
			wantRefund: 500,
		},
		{
			name:       "10 hours before pickup by admin",
			ctx:        userContext("admin-1", constant.RoleAdmin),
			stored:     storedBooking(model.StatusActive, 10*time.Hour),
			wantRefund: 0,
		},
		{
			name:     "already cancelled",
			ctx:      userContext(ownerID, constant.RoleUser),
			stored:   storedBooking(model.StatusCancelled, 72*time.Hour),
			wantCode: http.StatusConflict,
		},
		{
			name:     "already completed",
			ctx:      userContext(ownerID, constant.RoleUser),
			stored:   storedBooking(model.StatusCompleted, 72*time.Hour),
			wantCode: http.StatusConflict,
		},
		{
			name:     "not the owner",
			ctx:      userContext(strangerID, constant.RoleUser),
			stored:   storedBooking(model.StatusPending, 72*time.Hour),
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)

			if tt.wantCode == 0 {
				cancelled := tt.stored
				cancelled.BookingStatus = model.StatusCancelled
				cancelled.PaymentStatus = model.PaymentCancelled
				cancelled.RefundAmount = ptr(tt.wantRefund)

				f.repo.EXPECT().
					UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldBookingStatus])
						assert.Equal(t, model.PaymentCancelled, fields[model.FieldPaymentStatus])
						assert.Equal(t, tt.wantRefund, fields[model.FieldRefundAmount])
						assert.Equal(t, "plans changed", fields[model.FieldCancellationReason])
						assert.NotContains(t, fields, model.FieldTotalAmount)
						assert.NotNil(t, fields[model.FieldCancellationDate])

						where, _ := filter.GetWhereClause()
						assert.Contains(t, where, "bookings.booking_status NOT IN")

						return 1, nil
					})
				f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(cancelled, nil)
			}

			res, err := f.svc.Cancel(tt.ctx, dto.CancelBookingRequest{Reason: "plans changed"}, bookingID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusCancelled, res.BookingStatus)
			assert.Equal(t, 1000.0, res.TotalAmount)
			assert.Equal(t, tt.wantRefund, *res.RefundAmount)
		})
	}
}

func TestBookingService_SubmitFeedback(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		rating     *float64
		ratings    []float64
		wantRating float64
		wantCode   int
	}{
		{name: "missing rating", rating: nil, wantCode: http.StatusBadRequest},
		{name: "rating above five", rating: ptr(5.5), wantCode: http.StatusBadRequest},
		{name: "negative rating", rating: ptr(-1.0), wantCode: http.StatusBadRequest},
		{name: "zero is accepted", rating: ptr(0.0), ratings: []float64{0}, wantRating: 0},
		{name: "average of three", rating: ptr(3.0), ratings: []float64{4, 5, 3}, wantRating: 4.0},
		{name: "average rounds to one decimal", rating: ptr(5.0), ratings: []float64{4, 5, 3, 5}, wantRating: 4.3},
		{name: "sub decimal ratings keep precision", rating: ptr(1.27), ratings: []float64{1.24, 1.24, 1.27}, wantRating: 1.3},
		{name: "pending booking can be rated", status: model.StatusPending, rating: ptr(4.0), ratings: []float64{4}, wantRating: 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantCode == 0 {
				status := tt.status
				if status == "" {
					status = model.StatusCompleted
				}

				rated := storedBooking(status, -72*time.Hour)
				rated.FeedbackRating = tt.rating

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(status, -72*time.Hour), nil)
				f.repo.EXPECT().
					SaveFeedback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, feedback repository.Feedback) error {
						assert.Equal(t, bookingID, feedback.BookingID)
						assert.Equal(t, vehicleID, feedback.VehicleID)
						assert.Equal(t, *tt.rating, feedback.Booking[model.FieldFeedbackRating])
						assert.NotNil(t, feedback.Booking[model.FieldFeedbackSubmittedAt])
						assert.Equal(t, tt.wantRating, feedback.Vehicle(tt.ratings)[vehicleModel.FieldRating])

						return nil
					})
				f.repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(rated, nil)
			}

			res, err := f.svc.SubmitFeedback(userContext(ownerID, constant.RoleUser), dto.FeedbackRequest{Rating: tt.rating, Comment: ptr("smooth ride")}, bookingID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, *tt.rating, res.Feedback.Rating)
		})
	}
}

func TestBookingService_SubmitFeedback_NotOwner(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCompleted, -72*time.Hour), nil)

	_, err := f.svc.SubmitFeedback(userContext(strangerID, constant.RoleUser), dto.FeedbackRequest{Rating: ptr(4.0)}, bookingID)

	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestBookingService_Cancel_ClosedConcurrently(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, 72*time.Hour), nil)
	f.repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	_, err := f.svc.Cancel(userContext(ownerID, constant.RoleUser), dto.CancelBookingRequest{}, bookingID)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_SubmitFeedback_SaveFailure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusCompleted, -72*time.Hour), nil)
	f.repo.EXPECT().SaveFeedback(gomock.Any(), gomock.Any()).Return(errors.New("failed to update vehicle rating: db down"))

	res, err := f.svc.SubmitFeedback(userContext(ownerID, constant.RoleUser), dto.FeedbackRequest{Rating: ptr(4.0)}, bookingID)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Empty(t, res.ID)
}

func TestBookingService_ReloadFailureStillInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	done := make(chan struct{})

	redis.EXPECT().Delete(gomock.Any(), "booking:get:"+bookingID).Return(nil)
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	gomock.InOrder(
		redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2),
		redis.EXPECT().Clear(gomock.Any(), "vehicle:gets*").DoAndReturn(func(context.Context, string) error {
			close(done)

			return nil
		}),
	)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(model.StatusConfirmed, 72*time.Hour), nil)
	repo.EXPECT().UpdateAffected(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().GetPrimary(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("connection reset"))

	svc := service.New(repo, vehicleMocks.NewMockVehicle(ctrl), &config.Config{}, redis, mocks.NewOtel(), bookingMocks.NewMockPublisher(ctrl))

	_, err := svc.Cancel(userContext(ownerID, constant.RoleUser), dto.CancelBookingRequest{}, bookingID)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("booking caches were not invalidated")
	}
}

func TestBookingService_Stats(t *testing.T) {
	t.Run("computed from repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), model.CacheStatsBooking, gomock.Any()).Return(errors.New("cache miss"))

		gomock.InOrder(
			f.repo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(10, nil),
			f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
			f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil),
			f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil),
		)
		f.repo.EXPECT().Sum(gomock.Any(), model.FieldTotalAmount, gomock.Any()).Return(12500.0, nil)

		res, err := f.svc.Stats(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, dto.StatsResponse{
			TotalBookings:     10,
			ConfirmedBookings: 4,
			CompletedBookings: 3,
			CancelledBookings: 2,
			TotalRevenue:      12500,
		}, res)
	})

	t.Run("count failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))

		_, err := f.svc.Stats(context.Background())

		assert.Error(t, err)
	})
}
