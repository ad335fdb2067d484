package vehicle

import (
	"fmt"
	"net/http"

	"gomoto/infras/otel"
	"gomoto/internal/domains/vehicle/model"
	"gomoto/internal/domains/vehicle/model/dto"
	"gomoto/internal/domains/vehicle/service"
	"gomoto/shared"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"
	"gomoto/shared/validator"
	"gomoto/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/all", handler.GetVehicles)
		r.Get("/available", handler.GetAvailableVehicles)
		r.Get("/type/{type}", handler.GetVehiclesByType)
		r.Get("/{id}", handler.GetVehicleByID)
		r.Post("/", handler.CreateVehicle)
		r.Put("/{id}", handler.UpdateVehicle)
		r.Delete("/{id}", handler.DeleteVehicle)
		r.Patch("/{id}/availability", handler.ToggleAvailability)
		r.Post("/{id}/images", handler.UploadImage)
	})
}

// GetVehicles lists the fleet.
// @Summary List vehicles
// @Description List vehicles with optional type, availability and status filters.
// @Tags Vehicle
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Vehicle type" Enums(bike, car, truck, jcb)
// @Param is_available query bool false "Availability flag"
// @Param status query string false "Vehicle status" Enums(active, maintenance, inactive)
// @Success 200 {object} response.Envelope[dto.GetVehiclesResponse] "List of vehicles"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/all [get]
func (handler *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter, err := vehiclesFilter(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	vehicles, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, vehicles)
}

// GetAvailableVehicles lists vehicles that can be booked right now.
// @Summary List available vehicles
// @Tags Vehicle
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Envelope[dto.GetVehiclesResponse] "List of vehicles"
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/available [get]
func (handler *Handler) GetAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableVehicles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	vehicles, err := handler.service.GetAvailable(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available vehicles")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, vehicles)
}

// GetVehiclesByType lists available vehicles of one type.
// @Summary List available vehicles by type
// @Tags Vehicle
// @Produce json
// @Param type path string true "Vehicle type" Enums(bike, car, truck, jcb)
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Envelope[dto.GetVehiclesResponse] "List of vehicles"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/type/{type} [get]
func (handler *Handler) GetVehiclesByType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehiclesByType")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	vehicleType := chi.URLParam(r, constant.RequestParamType)

	vehicles, err := handler.service.GetByType(ctx, vehicleType, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", vehicleType).Msg("failed to get vehicles by type")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, vehicles)
}

// GetVehicleByID retrieves a vehicle.
// @Summary Get a vehicle by ID
// @Tags Vehicle
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Envelope[dto.VehicleResponse] "Vehicle details"
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/{id} [get]
func (handler *Handler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	vehicle, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to get vehicle")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, vehicle)
}

// CreateVehicle adds a vehicle to the fleet.
// @Summary Create a vehicle
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} response.Envelope[dto.VehicleResponse] "Vehicle created"
// @Failure 400 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles [post]
// @Security BearerAuth
func (handler *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicle")
	defer scope.End()

	req := dto.CreateVehicleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	vehicle, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle created successfully")

	response.WithData(w, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// UpdateVehicle updates the mutable attributes of a vehicle.
// @Summary Update a vehicle
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Update Vehicle Request"
// @Success 200 {object} response.Envelope[dto.VehicleResponse] "Vehicle updated"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateVehicleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	vehicle, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to update vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle updated successfully")

	response.WithData(w, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle removes a vehicle and its stored images.
// @Summary Delete a vehicle
// @Tags Vehicle
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Message "Vehicle deleted"
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to delete vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle deleted successfully")

	response.WithMessage(w, http.StatusOK, "Vehicle deleted successfully")
}

// ToggleAvailability sets the availability flag of a vehicle.
// @Summary Toggle vehicle availability
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body dto.ToggleAvailabilityRequest true "Toggle Availability Request"
// @Success 200 {object} response.Envelope[dto.VehicleResponse] "Availability updated"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/{id}/availability [patch]
// @Security BearerAuth
func (handler *Handler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ToggleAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	vehicle, err := handler.service.ToggleAvailability(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to toggle vehicle availability")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Vehicle availability updated", vehicle)
}

// UploadImage stores an image for a vehicle.
// @Summary Upload a vehicle image
// @Description Upload a png, jpeg or webp image of at most 5 MB.
// @Tags Vehicle
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param image formData file true "Vehicle image"
// @Success 200 {object} response.Envelope[dto.UploadImageResponse] "Image uploaded"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/vehicles/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(fmt.Errorf("invalid multipart form: %w", err)))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequestFromString(constant.FormFile+" is required"))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate image")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to upload vehicle image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle image uploaded successfully")

	response.WithData(w, http.StatusOK, "Image uploaded successfully", res)
}

func vehiclesFilter(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if vehicleType := query.Get(model.FieldType); vehicleType != constant.Empty {
		if !model.IsValidType(vehicleType) {
			return filter, failure.BadRequestFromString("invalid vehicle type")
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    vehicleType,
			Table:    model.TableName,
		})
	}

	if available := shared.ConvertStringToBool(query.Get(model.FieldIsAvailable)); available != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldStatus); status != constant.Empty {
		if err := validator.ValidateVar(status, "oneof=active maintenance inactive"); err != nil {
			return filter, failure.BadRequestFromString("invalid vehicle status")
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filter, nil
}
