package dto

import (
	"gomoto/shared/constant"
	"gomoto/shared/model"
	"gomoto/shared/timezone"
)

// Metadata is the audit block embedded in API responses, rendered in the app timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(source.CreatedAt, constant.DateFormat),
		CreatedBy:  source.CreatedBy,
		ModifiedBy: source.ModifiedBy,
	}

	if !source.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(source.ModifiedAt, constant.DateFormat)
	}
}
