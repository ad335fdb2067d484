// Package timezone pins every timestamp the service produces to APP_TIMEZONE.
package timezone

import (
	"errors"
	"fmt"
	"time"

	"gomoto/config"

	"github.com/rs/zerolog/log"
)

var ErrInvalidDateTime = errors.New("invalid date time")

// dateTimeLayouts are tried in order by ParseDateTime.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("no timezone configured, using UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("failed to load timezone, using UTC")

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("application timezone initialized")
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse parses value with layout, treating zone-less values as app local time.
func Parse(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, appLocation)
	if err != nil {
		return t, fmt.Errorf("failed to parse time: %w", err)
	}

	return t, nil
}

// ParseDateTime accepts RFC 3339, a local date time with or without seconds, or a bare date.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, appLocation); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
