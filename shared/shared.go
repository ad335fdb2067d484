package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gomoto/shared/cache"
	"gomoto/shared/constant"
	"gomoto/shared/dto"
	"gomoto/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToBool returns nil for an empty or unparsable query value.
func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring non-boolean query value")

		return nil
	}

	return &boolValue
}

// CalculateTotalPage is at least 1 so an empty list still reports one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map
// and stamps the modification metadata.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts into a redis key, e.g. "vehicle:get:<id>".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from pagination and the filter values.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	parts := []string{
		fmt.Sprintf("page=%d", params.Page),
		fmt.Sprintf("limit=%d", params.Limit),
	}

	if params.SortBy != "" {
		parts = append(parts, fmt.Sprintf("sort=%s.%s", params.SortBy, params.SortDir))
	}

	filterParts := flattenFilter(filter)
	sort.Strings(filterParts)

	parts = append(parts, filterParts...)

	return BuildCacheKey(prefix, parts...)
}

func flattenFilter(group dto.FilterGroup) []string {
	parts := []string{}

	for _, item := range group.Filters {
		switch filter := item.(type) {
		case dto.Filter:
			if filter.Value == nil || filter.Value == constant.Empty {
				continue
			}

			parts = append(parts, fmt.Sprintf("%s.%s=%v", filter.Field, filter.Operator, filter.Value))
		case dto.FilterGroup:
			parts = append(parts, flattenFilter(filter)...)
		}
	}

	return parts
}

// InvalidateCaches removes every key under the prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// CacheAsync saves value in the background so a slow cache never delays the response.
func CacheAsync(ctx context.Context, redisCache cache.RedisCache, key string, value any, ttl int) {
	detached := context.WithoutCancel(ctx)

	go func() {
		if err := redisCache.Save(detached, key, value, ttl); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save cache entry")
		}
	}()
}
