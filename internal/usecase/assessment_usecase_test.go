package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRejectsProtectedFields(t *testing.T) {
	// the protected-field scan runs before any decode or lookup, so a bare
	// usecase is enough to exercise it
	uc := &AssessmentUsecase{}

	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{name: "id", payload: `{"id": "other"}`, field: "id"},
		{name: "user id", payload: `{"user_id": "other"}`, field: "user_id"},
		{name: "client id", payload: `{"client_id": "other"}`, field: "client_id"},
		{name: "created at", payload: `{"created_at": "2020-01-01T00:00:00Z"}`, field: "created_at"},
		{name: "mixed with allowed fields", payload: `{"english_level": "superior", "id": "other"}`, field: "id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Update("some-id", []byte(tt.payload))
			require.Error(t, err)

			var protected *ErrProtectedField
			require.ErrorAs(t, err, &protected)
			assert.Equal(t, tt.field, protected.Field)
		})
	}
}

func TestUpdateRejectsMalformedPayload(t *testing.T) {
	uc := &AssessmentUsecase{}

	_, err := uc.Update("some-id", []byte(`{"english_level": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode update payload")
}
