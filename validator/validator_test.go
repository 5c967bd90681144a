package validator

import (
	"strings"
	"testing"

	"pocket-notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note",
			req:       models.CreateNoteRequest{Text: "buy milk"},
			wantError: false,
		},
		{
			name:      "Surrounding whitespace is fine",
			req:       models.CreateNoteRequest{Text: "  buy milk  "},
			wantError: false,
		},
		{
			name:      "Empty text",
			req:       models.CreateNoteRequest{Text: ""},
			wantError: true,
			errorMsg:  "text cannot be empty",
		},
		{
			name:      "Whitespace only",
			req:       models.CreateNoteRequest{Text: " \t\n "},
			wantError: true,
			errorMsg:  "text cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreateFavorite(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(models.CreateFavoriteRequest{Name: "Coffee"}))

	err := v.Validate(models.CreateFavoriteRequest{Name: "   "})
	require.Error(t, err)

	validationErrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "name", validationErrs[0].Field)
	assert.Equal(t, "notblank", validationErrs[0].Tag)
}

func TestValidator_UpdateSettings(t *testing.T) {
	v := New()

	name := "ada"
	assert.NoError(t, v.Validate(models.UpdateSettingsRequest{Username: &name}))

	empty := ""
	assert.NoError(t, v.Validate(models.UpdateSettingsRequest{Username: &empty}), "clearing the username is allowed")

	assert.NoError(t, v.Validate(models.UpdateSettingsRequest{}), "no fields is a valid no-op update")

	long := strings.Repeat("a", 101)
	err := v.Validate(models.UpdateSettingsRequest{Username: &long})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username must be at most 100 characters")
}
