package timezone_test

import (
	"testing"
	"time"

	"gomoto/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	local := timezone.ToAppTime(utc)

	assert.True(t, utc.Equal(local))
	assert.Equal(t, timezone.GetLocation(), local.Location())
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, timezone.GetLocation(), parsed.Location())

	_, err = timezone.Parse(time.DateOnly, "01/01/2024")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339 keeps its offset",
			value: "2026-05-01T10:00:00Z",
			want:  time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "local date time",
			value: "2026-05-01T10:30:00",
			want:  time.Date(2026, 5, 1, 10, 30, 0, 0, timezone.GetLocation()),
		},
		{
			name:  "local date time without seconds",
			value: "2026-05-01T10:30",
			want:  time.Date(2026, 5, 1, 10, 30, 0, 0, timezone.GetLocation()),
		},
		{
			name:  "date only",
			value: "2026-05-01",
			want:  time.Date(2026, 5, 1, 0, 0, 0, 0, timezone.GetLocation()),
		},
		{
			name:    "garbage",
			value:   "tomorrow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDateTime(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, timezone.ErrInvalidDateTime)

				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, timezone.ToAppTime(ts).Format(time.RFC3339), timezone.Format(ts, time.RFC3339))
}
