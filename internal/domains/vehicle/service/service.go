package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path"

	"gomoto/config"
	"gomoto/infras/otel"
	"gomoto/infras/s3"
	"gomoto/internal/domains/vehicle/model"
	"gomoto/internal/domains/vehicle/model/dto"
	"gomoto/internal/domains/vehicle/repository"
	"gomoto/shared"
	"gomoto/shared/cache"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"
	gRepo "gomoto/shared/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var ErrDeleteImages = errors.New("failed to delete vehicle images")

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (dto.VehicleResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVehiclesResponse, error)
	GetAvailable(ctx context.Context, req gDto.QueryParams) (dto.GetVehiclesResponse, error)
	GetByType(ctx context.Context, vehicleType string, req gDto.QueryParams) (dto.GetVehiclesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.VehicleResponse, error)
	Update(ctx context.Context, req dto.UpdateVehicleRequest, id string) (dto.VehicleResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleAvailability(ctx context.Context, req dto.ToggleAvailabilityRequest, id string) (dto.VehicleResponse, error)
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Vehicle
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Vehicle, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Vehicle {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	vehicle := req.ToModel(user)

	exist, err := s.repo.Exist(ctx, registrationFilter(vehicle.RegistrationNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check registration number")

		return res, fmt.Errorf("failed to check registration number: %w", err)
	}

	if exist {
		return res, failure.Conflict("vehicle with this registration number already exists")
	}

	if err = s.repo.Insert(ctx, vehicle); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("vehicle with this registration number already exists")
		}

		log.Error().Err(err).Msg("failed to create vehicle")

		return res, fmt.Errorf("failed to create vehicle: %w", err)
	}

	res.FromModel(vehicle)

	go s.invalidateLists(context.WithoutCancel(ctx))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVehiclesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheGetAllVehicle, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicles")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	vehicles, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicles")

		return res, fmt.Errorf("failed to get vehicles: %w", err)
	}

	res.FromModels(vehicles, total, req.Limit)

	shared.CacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// GetAvailable lists vehicles that are both flagged available and active.
func (s *serviceImpl) GetAvailable(ctx context.Context, req gDto.QueryParams) (dto.GetVehiclesResponse, error) {
	return s.GetAll(ctx, req, availableFilter())
}

func (s *serviceImpl) GetByType(ctx context.Context, vehicleType string, req gDto.QueryParams) (dto.GetVehiclesResponse, error) {
	if !model.IsValidType(vehicleType) {
		return dto.GetVehiclesResponse{}, failure.BadRequestFromString("invalid vehicle type")
	}

	filter := availableFilter()
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldType,
		Operator: gDto.FilterOperatorEq,
		Value:    vehicleType,
		Table:    model.TableName,
	})

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheCountVehicle, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicles")

		return total, fmt.Errorf("failed to count vehicles: %w", err)
	}

	shared.CacheAsync(ctx, s.cache, cacheKey, total, s.cfg.Cache.TTL)

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheGetVehicle, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicle")

		return res, nil
	}

	vehicle, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(vehicle)

	shared.CacheAsync(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateVehicleRequest, id string) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if req.Features != nil {
		updatedFields[model.FieldFeatures] = pq.StringArray(req.Features)
	}

	return s.apply(ctx, id, updatedFields)
}

func (s *serviceImpl) ToggleAvailability(ctx context.Context, req dto.ToggleAvailabilityRequest, id string) (res dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsAvailable == nil {
		return res, failure.BadRequestFromString("is_available must be a boolean")
	}

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldIsAvailable] = *req.IsAvailable

	return s.apply(ctx, id, updatedFields)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	vehicle, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("vehicle has bookings and cannot be deleted")
		}

		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to delete vehicle")

		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if err := s.deleteImages(c, vehicle.Images); err != nil {
			log.Error().Err(err).Str("vehicle_id", id).Msg("failed to delete vehicle images")
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	vehicle, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	fileName := uuid.NewString() + path.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, path.Join(model.EntityName, id), req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload vehicle image")

		return res, fmt.Errorf("failed to upload vehicle image: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	images := append(pq.StringArray{}, vehicle.Images...)
	images = append(images, url)

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldImages] = images

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to save vehicle image")

		return res, fmt.Errorf("failed to save vehicle image: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	res.URL = url
	res.Images = images

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Vehicle, error) {
	vehicle, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to get vehicle")

		return vehicle, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return vehicle, failure.NotFound("vehicle not found")
	}

	return vehicle, nil
}

func (s *serviceImpl) apply(ctx context.Context, id string, updatedFields map[string]any) (res dto.VehicleResponse, err error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to update vehicle")

		return res, fmt.Errorf("failed to update vehicle: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	vehicle, err := s.repo.GetPrimary(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("vehicle_id", id).Msg("failed to reload vehicle")

		return res, fmt.Errorf("failed to reload vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return res, failure.NotFound("vehicle not found")
	}

	res.FromModel(vehicle)

	return res, nil
}

func (s *serviceImpl) deleteImages(ctx context.Context, urls []string) error {
	var deleteErrors []error

	for _, url := range urls {
		objectKey := s.s3.GetObjectKeyFromURL(url)
		if objectKey == constant.Empty {
			log.Warn().Str("url", url).Msg("image is not stored in the vehicle bucket")

			continue
		}

		if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImages, len(deleteErrors))
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(model.CacheGetVehicle, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle from cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, model.CacheGetAllVehicle)
	shared.InvalidateCaches(ctx, s.cache, model.CacheCountVehicle)
}

func registrationFilter(registrationNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRegistrationNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    registrationNumber,
				Table:    model.TableName,
			},
		},
	}
}

func availableFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusActive,
				Table:    model.TableName,
			},
		},
	}
}
