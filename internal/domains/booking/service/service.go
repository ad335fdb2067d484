package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"gomoto/config"
	"gomoto/infras/metrics"
	"gomoto/infras/otel"
	"gomoto/internal/domains/booking/event"
	"gomoto/internal/domains/booking/model"
	"gomoto/internal/domains/booking/model/dto"
	"gomoto/internal/domains/booking/policy"
	"gomoto/internal/domains/booking/repository"
	vehicleModel "gomoto/internal/domains/vehicle/model"
	vehicleRepo "gomoto/internal/domains/vehicle/repository"
	"gomoto/shared"
	"gomoto/shared/cache"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"
	"gomoto/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, req gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (dto.BookingResponse, error)
	SubmitFeedback(ctx context.Context, req dto.FeedbackRequest, id string) (dto.BookingResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	vehicleRepo vehicleRepo.Vehicle
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	publisher   event.Publisher
}

func New(
	repo repository.Booking,
	vehicleRepo vehicleRepo.Vehicle,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher event.Publisher,
) Booking {
	return &serviceImpl{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		publisher:   publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if field := req.MissingField(); field != constant.Empty {
		return res, failure.BadRequestFromString(field + " is required")
	}

	vehicle, err := s.vehicleRepo.Get(ctx, shared.FilterByID(req.VehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("vehicle_id", req.VehicleID).Msg("failed to get vehicle")

		return res, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return res, failure.NotFound("vehicle not found")
	}

	if !vehicle.IsAvailable {
		return res, failure.Conflict("vehicle is not available for booking")
	}

	pickup, dropoff, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if !pickup.Before(dropoff) {
		return res, failure.BadRequestFromString("dropoff date must be after pickup date")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := req.ToModel(user, vehicle, pickup, dropoff)

	sequence, err := s.repo.NextReferenceSequence(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate booking reference")

		return res, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking.BookingReference = model.Reference(booking.CreatedAt, sequence)

	if err = s.repo.Create(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreatedTotal.WithLabelValues(vehicle.Type).Inc()
	metrics.BookingAmount.Observe(booking.TotalAmount)

	return s.reload(ctx, booking, event.TypeBookingCreated)
}

func (s *serviceImpl) GetUserBookings(ctx context.Context, req gDto.QueryParams, status string) (dto.GetBookingsResponse, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if status != constant.Empty && !model.IsValidBookingStatus(status) {
		return dto.GetBookingsResponse{}, failure.BadRequestFromString("invalid booking status")
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: user, Table: model.TableName},
			gDto.Filter{Field: model.FieldBookingStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName},
		},
	}

	if status == constant.Empty {
		filter.Filters = filter.Filters[:1]
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	shared.CacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return total, fmt.Errorf("failed to count bookings: %w", err)
	}

	shared.CacheAsync(ctx, s.cache, cacheKey, total, s.cfg.Cache.TTL)

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if err = authorize(ctx, res.UserID); err != nil {
			return dto.BookingResponse{}, err
		}

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = authorize(ctx, booking.UserID); err != nil {
		return res, err
	}

	res.FromModel(booking)

	shared.CacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// UpdateStatus accepts any transition between known statuses.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if req.BookingStatus != nil && !model.IsValidBookingStatus(*req.BookingStatus) {
		return res, failure.BadRequestFromString("invalid booking status")
	}

	if req.PaymentStatus != nil && !model.IsValidPaymentStatus(*req.PaymentStatus) {
		return res, failure.BadRequestFromString("invalid payment status")
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), s.byID(id)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if req.BookingStatus != nil {
		metrics.BookingStatusUpdatesTotal.WithLabelValues(*req.BookingStatus).Inc()
	}

	return s.reload(ctx, booking, event.TypeBookingStatusUpdated)
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = authorize(ctx, booking.UserID); err != nil {
		return res, err
	}

	if booking.IsClosed() {
		return res, failure.Conflict("booking is already " + booking.BookingStatus)
	}

	now := timezone.Now()
	refund := policy.Refund(booking.TotalAmount, booking.PickupDate, now)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldBookingStatus] = model.StatusCancelled
	updatedFields[model.FieldPaymentStatus] = model.PaymentCancelled
	updatedFields[model.FieldCancellationDate] = now
	updatedFields[model.FieldRefundAmount] = refund

	if req.Reason != constant.Empty {
		updatedFields[model.FieldCancellationReason] = req.Reason
	}

	affected, err := s.repo.UpdateAffected(ctx, updatedFields, openBooking(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if affected == 0 {
		return res, failure.Conflict("booking is already completed or cancelled")
	}

	metrics.BookingCancellationsTotal.Inc()
	metrics.RefundAmountTotal.Add(refund)

	return s.reload(ctx, booking, event.TypeBookingCancelled)
}

// SubmitFeedback overwrites the booking feedback and recomputes the vehicle rating over all rated bookings.
func (s *serviceImpl) SubmitFeedback(ctx context.Context, req dto.FeedbackRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitFeedback")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Rating == nil || !policy.IsValidRating(*req.Rating) {
		return res, failure.BadRequestFromString("rating must be between 0 and 5")
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = authorize(ctx, booking.UserID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldFeedbackRating] = *req.Rating
	updatedFields[model.FieldFeedbackComment] = req.Comment
	updatedFields[model.FieldFeedbackSubmittedAt] = timezone.Now()

	err = s.repo.SaveFeedback(ctx, repository.Feedback{
		BookingID: id,
		VehicleID: booking.VehicleID,
		Booking:   updatedFields,
		Vehicle: func(ratings []float64) map[string]any {
			vehicleFields := shared.TransformFields(struct{}{}, user)
			vehicleFields[vehicleModel.FieldRating] = policy.AverageRating(ratings)

			return vehicleFields
		},
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Str("vehicle_id", booking.VehicleID).Msg("failed to save booking feedback")

		return res, fmt.Errorf("failed to save booking feedback: %w", err)
	}

	metrics.FeedbackSubmittedTotal.Inc()

	return s.reload(ctx, booking, event.TypeBookingFeedbackSubmitted)
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, model.CacheStatsBooking, &res); err == nil {
		return res, nil
	}

	var stats model.Stats

	counts := []struct {
		status string
		target *int
	}{
		{status: constant.Empty, target: &stats.TotalBookings},
		{status: model.StatusConfirmed, target: &stats.ConfirmedBookings},
		{status: model.StatusCompleted, target: &stats.CompletedBookings},
		{status: model.StatusCancelled, target: &stats.CancelledBookings},
	}

	for _, count := range counts {
		*count.target, err = s.repo.Count(ctx, statusFilter(model.FieldBookingStatus, count.status))
		if err != nil {
			log.Error().Err(err).Str("status", count.status).Msg("failed to count bookings")

			return res, fmt.Errorf("failed to count bookings: %w", err)
		}
	}

	stats.TotalRevenue, err = s.repo.Sum(ctx, model.FieldTotalAmount, statusFilter(model.FieldPaymentStatus, model.PaymentCompleted))
	if err != nil {
		log.Error().Err(err).Msg("failed to sum booking revenue")

		return res, fmt.Errorf("failed to sum booking revenue: %w", err)
	}

	res.FromModel(stats)

	shared.CacheAsync(ctx, s.cache, model.CacheStatsBooking, res, s.cfg.Cache.StatsTTL)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

// reload reads the written booking back from the primary with its joins, then invalidates
// caches and publishes in the background. Caches are invalidated even when the read fails.
func (s *serviceImpl) reload(ctx context.Context, written model.Booking, eventType string) (res dto.BookingResponse, err error) {
	booking, err := s.repo.GetPrimary(ctx, s.byID(written.ID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", written.ID).Msg("failed to reload booking")

		go s.invalidate(context.WithoutCancel(ctx), written)

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	if booking.ID == constant.Empty {
		go s.invalidate(context.WithoutCancel(ctx), written)

		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, booking)

		if err := s.publisher.Publish(c, event.NewBookingEvent(eventType, booking)); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("booking event not published")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	for _, key := range []string{
		shared.BuildCacheKey(model.CacheGetBooking, booking.ID),
		shared.BuildCacheKey(vehicleModel.CacheGetVehicle, booking.VehicleID),
		model.CacheStatsBooking,
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete cache")
		}
	}

	for _, prefix := range []string{
		model.CacheGetAllBooking,
		model.CacheCountBooking,
		vehicleModel.CacheGetAllVehicle,
	} {
		shared.InvalidateCaches(ctx, s.cache, prefix)
	}
}

func (s *serviceImpl) byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func statusFilter(field, status string) gDto.FilterGroup {
	if status == constant.Empty {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName},
		},
	}
}

// authorize lets admins through and everyone else only to their own bookings.
func authorize(ctx context.Context, ownerID string) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if constant.IsAdmin(role) {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user != constant.Empty && user == ownerID {
		return nil
	}

	return failure.Forbidden("you can only access your own bookings")
}

// openBooking matches the booking only while it can still be cancelled.
func openBooking(id string) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldBookingStatus,
		Value:    []string{model.StatusCompleted, model.StatusCancelled},
		Operator: gDto.FilterOperatorNotIn,
		Table:    model.TableName,
	})

	return filter
}
