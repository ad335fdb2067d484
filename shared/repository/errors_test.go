package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"gomoto/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPqErrorClassification(t *testing.T) {
	unique := fmt.Errorf("failed to insert data (vehicle): %w", &pq.Error{Code: "23505"})
	fk := fmt.Errorf("failed to delete data (vehicle): %w", &pq.Error{Code: "23503"})

	assert.True(t, repository.IsUniqueViolation(unique))
	assert.False(t, repository.IsForeignKeyViolation(unique))

	assert.True(t, repository.IsForeignKeyViolation(fk))
	assert.False(t, repository.IsUniqueViolation(fk))

	assert.False(t, repository.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, repository.IsPqError(nil, "23505"))
}
