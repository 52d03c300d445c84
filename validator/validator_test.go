package validator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andyle182810/devohub/validator"
	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type contactInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Email       string `json:"email"        validate:"omitempty,email"`
	FirstName   string `json:"first_name"   validate:"max=5"`
	Channel     string `json:"channel"      validate:"omitempty,oneof=sms email whatsapp rcs"`
}

type pricedNumber struct {
	MonthlyCost decimal.Decimal  `json:"monthly_cost" validate:"gte=0"`
	SetupCost   *decimal.Decimal `json:"setup_cost"   validate:"omitempty,lte=100"`
}

func validContact() contactInput {
	return contactInput{
		PhoneNumber: "+14155552671",
		Email:       "jane@example.com",
		FirstName:   "Jane",
		Channel:     "sms",
	}
}

func TestDefaultRestValidator(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.DefaultRestValidator()
	require.NotNil(t, validatorInstance)
	require.NotNil(t, validatorInstance.Validator)
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	err := validator.DefaultRestValidator().Validate(validContact())
	require.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(*contactInput)
		expectedField string
		expectedTag   string
		expectedMsg   string
	}{
		{
			name:          "missing phone number",
			mutate:        func(c *contactInput) { c.PhoneNumber = "" },
			expectedField: "phone_number",
			expectedTag:   "required",
			expectedMsg:   "phone_number is required",
		},
		{
			name:          "phone number without plus",
			mutate:        func(c *contactInput) { c.PhoneNumber = "14155552671" },
			expectedField: "phone_number",
			expectedTag:   "e164",
			expectedMsg:   "phone_number must be a phone number in international format, e.g. +14155552671",
		},
		{
			name:          "invalid email",
			mutate:        func(c *contactInput) { c.Email = "not-an-email" },
			expectedField: "email",
			expectedTag:   "email",
			expectedMsg:   "email must be a valid email address",
		},
		{
			name:          "name too long",
			mutate:        func(c *contactInput) { c.FirstName = "Jonathan" },
			expectedField: "first_name",
			expectedTag:   "max",
			expectedMsg:   "first_name must be at most 5",
		},
		{
			name:          "unknown channel",
			mutate:        func(c *contactInput) { c.Channel = "fax" },
			expectedField: "channel",
			expectedTag:   "oneof",
			expectedMsg:   "channel must be one of [sms email whatsapp rcs]",
		},
	}

	validatorInstance := validator.DefaultRestValidator()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			input := validContact()
			testCase.mutate(&input)

			err := validatorInstance.Validate(input)
			require.Error(t, err)
			require.ErrorIs(t, err, validator.ErrValidation)

			var validationErrors validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			require.Len(t, validationErrors, 1)
			require.Equal(t, testCase.expectedField, validationErrors[0].Field)
			require.Equal(t, testCase.expectedTag, validationErrors[0].Tag)
			require.Equal(t, testCase.expectedMsg, validationErrors[0].Message)
		})
	}
}

func TestValidate_MultipleErrorsJoinMessages(t *testing.T) {
	t.Parallel()

	err := validator.DefaultRestValidator().Validate(contactInput{
		PhoneNumber: "",
		Email:       "bad",
		FirstName:   "",
		Channel:     "",
	})
	require.Error(t, err)

	parts := strings.Split(err.Error(), "; ")
	require.Len(t, parts, 2)
	require.Contains(t, parts, "phone_number is required")
	require.Contains(t, parts, "email must be a valid email address")
}

func TestValidate_DecimalFields(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.DefaultRestValidator()

	setup := decimal.RequireFromString("25.00")
	require.NoError(t, validatorInstance.Validate(pricedNumber{
		MonthlyCost: decimal.RequireFromString("1.50"),
		SetupCost:   &setup,
	}))

	tooHigh := decimal.RequireFromString("100.01")
	err := validatorInstance.Validate(pricedNumber{
		MonthlyCost: decimal.RequireFromString("-0.01"),
		SetupCost:   &tooHigh,
	})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	require.Len(t, validationErrors, 2)
	require.Equal(t, "monthly_cost must be greater than or equal to 0", validationErrors[0].Message)
	require.Equal(t, "setup_cost must be less than or equal to 100", validationErrors[1].Message)
}

func TestVar_ReportsGivenFieldName(t *testing.T) {
	t.Parallel()

	err := validator.DefaultRestValidator().Var("recipient", "nobody", "email")
	require.ErrorIs(t, err, validator.ErrValidation)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	require.Equal(t, "recipient", validationErrors[0].Field)
	require.Equal(t, "nobody", validationErrors[0].Value)
}

func TestRegisterCustomValidation(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.DefaultRestValidator()

	err := validatorInstance.RegisterCustomValidation("sender_id", func(fl gvalidator.FieldLevel) bool {
		value := fl.Field().String()

		return len(value) > 0 && len(value) <= 11
	})
	require.NoError(t, err)

	type sender struct {
		ID string `json:"sender_id" validate:"sender_id"`
	}

	require.NoError(t, validatorInstance.Validate(sender{ID: "DEVO"}))

	err = validatorInstance.Validate(sender{ID: "A-VERY-LONG-SENDER"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sender_id failed validation on 'sender_id'")
}
