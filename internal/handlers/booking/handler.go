package booking

import (
	"net/http"

	"gomoto/infras/otel"
	"gomoto/internal/domains/booking/model"
	"gomoto/internal/domains/booking/model/dto"
	"gomoto/internal/domains/booking/service"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"
	"gomoto/shared/validator"
	"gomoto/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/my-bookings", handler.GetMyBookings)
		routerGroup.Get("/stats/all", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/status", handler.UpdateStatus)
		routerGroup.Put("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/feedback", handler.SubmitFeedback)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book a vehicle. The amount is priced from the vehicle rates, the rental period and the insurance tier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Envelope[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithData(writer, http.StatusCreated, "Booking created successfully", booking)
}

// GetMyBookings lists the bookings of the caller.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Booking status" Enums(pending, confirmed, active, completed, cancelled)
// @Success 200 {object} response.Envelope[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/my-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	status := request.URL.Query().Get(constant.RequestParamStatus)

	bookings, err := handler.service.GetUserBookings(ctx, queryParams, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Booking status" Enums(pending, confirmed, active, completed, cancelled)
// @Param vehicle_id query string false "Vehicle ID"
// @Success 200 {object} response.Envelope[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter, err := bookingsFilter(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetStats returns counters over all bookings.
// @Summary Get booking statistics
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Envelope[dto.StatsResponse] "Booking statistics"
// @Failure 500 {object} response.Message
// @Router /v1/bookings/stats/all [get]
// @Security BearerAuth
func (handler *Handler) GetStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, stats)
}

// GetBookingByID retrieves a booking. Users only see their own bookings.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Envelope[dto.BookingResponse] "Booking details"
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateStatus moves a booking through its lifecycle.
// @Summary Update booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Envelope[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateBookingStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking status updated successfully")

	response.WithData(writer, http.StatusOK, "Booking status updated successfully", booking)
}

// CancelBooking cancels a booking and computes the refund.
// @Summary Cancel a booking
// @Description Cancel a booking. The refund depends on how far ahead of pickup the cancellation happens.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest false "Cancel Booking Request"
// @Success 200 {object} response.Envelope[dto.BookingResponse] "Booking cancelled"
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id}/cancel [put]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CancelBookingRequest{}
	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	booking, err := handler.service.Cancel(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithData(writer, http.StatusOK, "Booking cancelled successfully", booking)
}

// SubmitFeedback rates a booking in any status, replacing earlier feedback.
// @Summary Submit booking feedback
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.FeedbackRequest true "Feedback Request"
// @Success 200 {object} response.Envelope[dto.BookingResponse] "Feedback submitted"
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/{id}/feedback [post]
// @Security BearerAuth
func (handler *Handler) SubmitFeedback(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitFeedback")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.FeedbackRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.SubmitFeedback(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to submit feedback")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Feedback submitted successfully")

	response.WithData(writer, http.StatusOK, "Feedback submitted successfully", booking)
}

func bookingsFilter(request *http.Request) (gDto.FilterGroup, error) {
	query := request.URL.Query()
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := query.Get(constant.RequestParamStatus); status != constant.Empty {
		if !model.IsValidBookingStatus(status) {
			return filter, failure.BadRequestFromString("invalid booking status")
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldBookingStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if vehicleID := query.Get(model.FieldVehicleID); vehicleID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldVehicleID,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleID,
			Table:    model.TableName,
		})
	}

	return filter, nil
}
