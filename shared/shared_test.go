package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gomoto/shared"
	cacheMocks "gomoto/shared/cache/mocks"
	"gomoto/shared/constant"
	"gomoto/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "true", want: boolPtr(true)},
		{input: "0", want: boolPtr(false)},
		{input: "yes", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{name: "empty", total: 0, limit: 10, want: 1},
		{name: "exact", total: 30, limit: 10, want: 3},
		{name: "remainder", total: 31, limit: 10, want: 4},
		{name: "no limit", total: 31, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name      string   `db:"name"`
		DailyRate *float64 `db:"daily_rate"`
		Seats     int      `db:"seats"`
		Internal  string   `db:"-"`
		NoTag     string
	}

	rate := 499.0

	got := shared.TransformFields(update{Name: "Activa", DailyRate: &rate, Internal: "x", NoTag: "y"}, "admin-1")

	assert.Equal(t, "Activa", got["name"])
	assert.Equal(t, 499.0, got["daily_rate"])
	assert.NotContains(t, got, "seats")
	assert.NotContains(t, got, "-")
	assert.Equal(t, "admin-1", got[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, got[constant.FieldModifiedAt])
	assert.Len(t, got, 4)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("vehicle-1", "id", "vehicles")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(vehicles.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "vehicle-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "vehicle:get", shared.BuildCacheKey("vehicle:get"))
	assert.Equal(t, "vehicle:get:abc", shared.BuildCacheKey("vehicle:get", "abc"))
	assert.Equal(t, "rate:10.0.0.1:curl", shared.BuildCacheKey("rate", "10.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "daily_rate", SortDir: dto.SortDirAsc}

	first := dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "type", Value: "bike", Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "brand", Value: "", Operator: dto.FilterOperatorEq},
	}}
	second := dto.FilterGroup{Filters: []any{
		dto.FilterGroup{Filters: []any{dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq}}},
		dto.Filter{Field: "type", Value: "bike", Operator: dto.FilterOperatorEq},
	}}

	key := shared.BuildCacheKeyWithQuery("vehicle:all", params, first)

	assert.Equal(t, "vehicle:all:page=2:limit=10:sort=daily_rate.ASC:status.eq=active:type.eq=bike", key)
	assert.Equal(t, key, shared.BuildCacheKeyWithQuery("vehicle:all", params, second))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Clear(gomock.Any(), "vehicle:all"+constant.Asterix).Return(nil)
	cache.EXPECT().Clear(gomock.Any(), "vehicle:count"+constant.Asterix).Return(errors.New("redis down"))

	require.NotPanics(t, func() {
		shared.InvalidateCaches(context.Background(), cache, "vehicle:all")
		shared.InvalidateCaches(context.Background(), cache, "vehicle:count")
	})
}

func TestCacheAsync(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	saved := make(chan struct{})

	cache.EXPECT().Save(gomock.Any(), "vehicle:get:v-1", "payload", 300).DoAndReturn(func(context.Context, string, any, int) error {
		close(saved)

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	shared.CacheAsync(ctx, cache, "vehicle:get:v-1", "payload", 300)
	cancel()

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("cache entry was not saved")
	}
}

func boolPtr(value bool) *bool {
	return &value
}
