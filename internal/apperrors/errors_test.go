package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/furniture_erp/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsCause(t *testing.T) {
	err := apperrors.NewAppError(500, "failed to load document doc-1", apperrors.ErrNotFound)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "failed to load document doc-1: resource not found", err.Error())
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(400, "invalid cursor", nil)

	assert.Equal(t, "invalid cursor", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestAppError_As(t *testing.T) {
	wrapped := fmt.Errorf("saving payment: %w", apperrors.NewAppError(500, "insert failed", errors.New("boom")))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 500, appErr.Code)
}
