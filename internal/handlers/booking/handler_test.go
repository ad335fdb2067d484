package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gomoto/infras/otel/mocks"
	"gomoto/internal/domains/booking/model/dto"
	bookingMocks "gomoto/internal/domains/booking/service/mocks"
	"gomoto/internal/handlers/booking"
	gDto "gomoto/shared/dto"
	"gomoto/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*bookingMocks.MockBooking, http.Handler) {
	t.Helper()

	svc := bookingMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateBooking(t *testing.T) {
	valid := `{"vehicle_id":"vehicle-1","pickup_date":"2026-11-01T10:00:00Z","dropoff_date":"2026-11-03T10:00:00Z","rental_days":2}`

	tests := []struct {
		name       string
		body       string
		setup      func(svc *bookingMocks.MockBooking)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "created",
			body: valid,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "vehicle-1", req.VehicleID)
						assert.Equal(t, 2, req.RentalDays)

						return dto.BookingResponse{ID: "booking-1", BookingReference: "GOMOTO20261014093000000001"}, nil
					})
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "Booking created successfully",
		},
		{
			name:       "missing vehicle",
			body:       `{"pickup_date":"2026-11-01","dropoff_date":"2026-11-03","rental_days":2}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "vehicle_id is required",
		},
		{
			name:       "zero rental days",
			body:       `{"vehicle_id":"vehicle-1","pickup_date":"2026-11-01","dropoff_date":"2026-11-03","rental_days":0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown insurance",
			body:       `{"vehicle_id":"vehicle-1","pickup_date":"2026-11-01","dropoff_date":"2026-11-03","rental_days":1,"insurance_type":"gold"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "vehicle not available",
			body: valid,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.BadRequestFromString("vehicle is not available for booking"))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "vehicle is not available for booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := serve(router, http.MethodPost, "/bookings/", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantMsg != "" {
				res := struct {
					Message string `json:"message"`
				}{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, tt.wantMsg, res.Message)
			}
		})
	}
}

func TestHandler_GetMyBookings(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().GetUserBookings(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}, "confirmed").
		Return(dto.GetBookingsResponse{TotalPage: 1}, nil)

	rec := serve(router, http.MethodGet, "/bookings/my-bookings?status=confirmed", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				require.Len(t, filter.Filters, 2)

				vehicle, ok := filter.Filters[1].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, "vehicle-1", vehicle.Value)

				return dto.GetBookingsResponse{}, nil
			})

		rec := serve(router, http.MethodGet, "/bookings/?status=pending&vehicle_id=vehicle-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, http.MethodGet, "/bookings/?status=lost", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetStats(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().Stats(gomock.Any()).Return(dto.StatsResponse{TotalBookings: 4, TotalRevenue: 1500}, nil)

	rec := serve(router, http.MethodGet, "/bookings/stats/all", "")

	require.Equal(t, http.StatusOK, rec.Code)

	res := struct {
		Data dto.StatsResponse `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 4, res.Data.TotalBookings)
	assert.InDelta(t, 1500.0, res.Data.TotalRevenue, 0.001)
}

func TestHandler_GetBookingByID(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().Get(gomock.Any(), "booking-1").Return(dto.BookingResponse{}, failure.Forbidden("you can only view your own bookings"))

	rec := serve(router, http.MethodGet, "/bookings/booking-1", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "booking-1").Return(dto.BookingResponse{ID: "booking-1"}, nil)

		rec := serve(router, http.MethodPut, "/bookings/booking-1/status", `{"booking_status":"confirmed"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, router := setup(t)

		rec := serve(router, http.MethodPut, "/bookings/booking-1/status", `{"booking_status":"lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Cancel(gomock.Any(), dto.CancelBookingRequest{}, "booking-1").Return(dto.BookingResponse{ID: "booking-1"}, nil)

		rec := serve(router, http.MethodPut, "/bookings/booking-1/cancel", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("with reason", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Cancel(gomock.Any(), dto.CancelBookingRequest{Reason: "plans changed"}, "booking-1").
			Return(dto.BookingResponse{ID: "booking-1"}, nil)

		rec := serve(router, http.MethodPut, "/bookings/booking-1/cancel", `{"cancellation_reason":"plans changed"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already cancelled", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "booking-1").
			Return(dto.BookingResponse{}, failure.BadRequestFromString("booking cannot be cancelled"))

		rec := serve(router, http.MethodPut, "/bookings/booking-1/cancel", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_SubmitFeedback(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		called     bool
		wantStatus int
	}{
		{name: "accepted", body: `{"rating":4.5,"comment":"smooth ride"}`, called: true, wantStatus: http.StatusOK},
		{name: "missing rating", body: `{"comment":"smooth ride"}`, wantStatus: http.StatusBadRequest},
		{name: "rating above five", body: `{"rating":6}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			if tt.called {
				svc.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any(), "booking-1").Return(dto.BookingResponse{ID: "booking-1"}, nil)
			}

			rec := serve(router, http.MethodPost, "/bookings/booking-1/feedback", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
