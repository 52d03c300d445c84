package validator_test

import (
	"testing"

	"github.com/andyle182810/devohub/validator"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "already canonical", input: "+1234567890", expected: "+1234567890"},
		{name: "spaces and dashes", input: " +1 415-555-2671 ", expected: "+14155552671"},
		{name: "parentheses and dots", input: "+44 (20) 7946.0958", expected: "+442079460958"},
		{name: "missing plus", input: "1234567890", wantErr: true},
		{name: "missing plus with formatting", input: "1 (415) 555-2671", wantErr: true},
		{name: "leading zero country code", input: "+0123456789", wantErr: true},
		{name: "letters", input: "invalid-phone", wantErr: true},
		{name: "plus only", input: "+", wantErr: true},
		{name: "too short", input: "+12345", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace", input: "   ", wantErr: true},
	}

	validatorInstance := validator.DefaultRestValidator()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := validatorInstance.NormalizePhoneNumber("recipient", testCase.input)
			if testCase.wantErr {
				require.ErrorIs(t, err, validator.ErrValidation)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.expected, got)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.DefaultRestValidator()

	got, err := validatorInstance.NormalizeEmail("recipient", "  Jane.Doe@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, "Jane.Doe@example.com", got)

	_, err = validatorInstance.NormalizeEmail("recipient", "jane.doe")
	require.ErrorIs(t, err, validator.ErrValidation)

	_, err = validatorInstance.NormalizeEmail("recipient", " ")
	require.ErrorIs(t, err, validator.ErrValidation)
	require.EqualError(t, err, "recipient is required")
}

func TestRequireString(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.DefaultRestValidator()

	got, err := validatorInstance.RequireString("message", "  Hello, World!  ")
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", got)

	for _, blank := range []string{"", " ", "\t\n"} {
		_, err := validatorInstance.RequireString("message", blank)
		require.ErrorIs(t, err, validator.ErrValidation)
		require.EqualError(t, err, "message is required")
	}
}
