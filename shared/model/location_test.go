package model_test

import (
	"testing"

	"gomoto/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestLocation_ValueAndScan(t *testing.T) {
	loc := model.Location{Address: "12 MG Road", City: "Pune", ZipCode: "411001"}

	value, err := loc.Value()
	assert.NoError(t, err)

	var scanned model.Location
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, loc, scanned)
}

func TestScanJSON(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    model.Location
		wantErr bool
	}{
		{name: "nil keeps zero value", src: nil, want: model.Location{}},
		{name: "string payload", src: `{"city":"Goa"}`, want: model.Location{City: "Goa"}},
		{name: "empty bytes", src: []byte{}, want: model.Location{}},
		{name: "invalid json", src: []byte(`{`), wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Location

			err := model.ScanJSON(tt.src, &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
