package vehicle_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"gomoto/infras/otel/mocks"
	"gomoto/internal/domains/vehicle/model/dto"
	vehicleMocks "gomoto/internal/domains/vehicle/service/mocks"
	"gomoto/internal/handlers/vehicle"
	"gomoto/shared/constant"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*vehicleMocks.MockVehicle, http.Handler) {
	t.Helper()

	svc := vehicleMocks.NewMockVehicle(gomock.NewController(t))
	handler := vehicle.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func imageForm(t *testing.T, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="front.png"`)
	header.Set(constant.RequestHeaderContentType, contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte{0x1}, size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_GetVehicles(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantFilters int
		wantStatus  int
	}{
		{name: "no filters", query: "", wantFilters: 0, wantStatus: http.StatusOK},
		{name: "all filters", query: "?type=car&is_available=true&status=active", wantFilters: 3, wantStatus: http.StatusOK},
		{name: "unparsable flag is ignored", query: "?is_available=maybe", wantFilters: 0, wantStatus: http.StatusOK},
		{name: "unknown type", query: "?type=boat", wantStatus: http.StatusBadRequest},
		{name: "unknown status", query: "?status=parked", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.wantStatus == http.StatusOK {
				svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVehiclesResponse, error) {
						assert.Len(t, filter.Filters, tt.wantFilters)

						return dto.GetVehiclesResponse{Vehicles: []dto.VehicleResponse{}, TotalPage: 1}, nil
					})
			}

			rec := serve(router, httptest.NewRequest(http.MethodGet, "/vehicles/all"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_GetAvailableAndByType(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetAvailable(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).Return(dto.GetVehiclesResponse{}, nil)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/vehicles/available", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("by type", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetByType(gomock.Any(), "bike", gomock.Any()).Return(dto.GetVehiclesResponse{}, nil)

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/vehicles/type/bike", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("by invalid type", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetByType(gomock.Any(), "boat", gomock.Any()).
			Return(dto.GetVehiclesResponse{}, failure.BadRequestFromString("invalid vehicle type"))

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/vehicles/type/boat", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetVehicleByID(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().Get(gomock.Any(), "vehicle-1").Return(dto.VehicleResponse{}, failure.NotFound("vehicle not found"))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/vehicles/vehicle-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateVehicle(t *testing.T) {
	valid := `{"registration_number":"ka01ab1234","brand":"Honda","model":"Activa","year":2022,"type":"bike",
		"fuel_type":"petrol","seating_capacity":2,"price_per_day":500,"price_per_hour":50}`

	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateVehicleRequest) (dto.VehicleResponse, error) {
				assert.Equal(t, "Honda", req.Brand)
				require.NotNil(t, req.PricePerDay)
				assert.InDelta(t, 500.0, *req.PricePerDay, 0.001)

				return dto.VehicleResponse{ID: "vehicle-1", RegistrationNumber: "KA01AB1234"}, nil
			})

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/vehicles/", strings.NewReader(valid)))

		require.Equal(t, http.StatusCreated, rec.Code)

		res := struct {
			Data dto.VehicleResponse `json:"data"`
		}{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "KA01AB1234", res.Data.RegistrationNumber)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, router := setup(t)

		body := strings.Replace(valid, `"bike"`, `"boat"`, 1)
		rec := serve(router, httptest.NewRequest(http.MethodPost, "/vehicles/", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dto.VehicleResponse{}, failure.Conflict("registration number already exists"))

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/vehicles/", strings.NewReader(valid)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_UpdateDeleteToggle(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Update(gomock.Any(), gomock.Any(), "vehicle-1").Return(dto.VehicleResponse{ID: "vehicle-1"}, nil)

		rec := serve(router, httptest.NewRequest(http.MethodPut, "/vehicles/vehicle-1", strings.NewReader(`{"brand":"Yamaha"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update rejects negative price", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, httptest.NewRequest(http.MethodPut, "/vehicles/vehicle-1", strings.NewReader(`{"price_per_day":-1}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Delete(gomock.Any(), "vehicle-1").Return(nil)

		rec := serve(router, httptest.NewRequest(http.MethodDelete, "/vehicles/vehicle-1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("toggle requires flag", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, httptest.NewRequest(http.MethodPatch, "/vehicles/vehicle-1/availability", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("toggle", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().ToggleAvailability(gomock.Any(), gomock.Any(), "vehicle-1").
			DoAndReturn(func(_ context.Context, req dto.ToggleAvailabilityRequest, _ string) (dto.VehicleResponse, error) {
				require.NotNil(t, req.IsAvailable)
				assert.False(t, *req.IsAvailable)

				return dto.VehicleResponse{ID: "vehicle-1"}, nil
			})

		rec := serve(router, httptest.NewRequest(http.MethodPatch, "/vehicles/vehicle-1/availability", strings.NewReader(`{"is_available":false}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_UploadImage(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().UploadImage(gomock.Any(), gomock.Any(), "vehicle-1").
			DoAndReturn(func(_ context.Context, req dto.UploadImageRequest, _ string) (dto.UploadImageResponse, error) {
				assert.Equal(t, "front.png", req.Image.Filename)
				assert.NotNil(t, req.ImageFile)

				return dto.UploadImageResponse{URL: "https://cdn/vehicle/vehicle-1/a.png"}, nil
			})

		body, contentType := imageForm(t, "image/png", 128)
		req := httptest.NewRequest(http.MethodPost, "/vehicles/vehicle-1/images", body)
		req.Header.Set(constant.RequestHeaderContentType, contentType)

		rec := serve(router, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unsupported mime type", func(t *testing.T) {
		_, router := setup(t)

		body, contentType := imageForm(t, "application/pdf", 128)
		req := httptest.NewRequest(http.MethodPost, "/vehicles/vehicle-1/images", body)
		req.Header.Set(constant.RequestHeaderContentType, contentType)

		rec := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		_, router := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/vehicles/vehicle-1/images", strings.NewReader(`{}`))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

		rec := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
