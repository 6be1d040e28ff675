package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotbonneville/silt/pkg/services"
	"github.com/elliotbonneville/silt/pkg/store"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("name", "must not be empty"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("character c1: %w", store.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already exists",
			err:      fmt.Errorf("account mira: %w", services.ErrAlreadyExists),
			wantCode: http.StatusConflict,
		},
		{
			name:     "invalid input",
			err:      fmt.Errorf("bad direction: %w", services.ErrInvalidInput),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unexpected error",
			err:      errors.New("disk on fire"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}
