package validator

import (
	"strings"
)

var phoneFormatting = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "", "\t", "")

// NormalizePhoneNumber strips common formatting characters and requires E.164 form: a leading '+' and digits only.
func (v *Validator) NormalizePhoneNumber(field, value string) (string, error) {
	number := phoneFormatting.Replace(strings.TrimSpace(value))
	if number == "" {
		return "", requiredError(field)
	}

	if err := v.Var(field, number, "e164"); err != nil {
		return "", err
	}

	return number, nil
}

// NormalizeEmail trims the address and lower-cases its domain part.
func (v *Validator) NormalizeEmail(field, value string) (string, error) {
	address := strings.TrimSpace(value)
	if address == "" {
		return "", requiredError(field)
	}

	if err := v.Var(field, address, "email"); err != nil {
		return "", err
	}

	at := strings.LastIndex(address, "@")

	return address[:at] + "@" + strings.ToLower(address[at+1:]), nil
}

func (v *Validator) RequireString(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", requiredError(field)
	}

	return trimmed, nil
}

func requiredError(field string) ValidationErrors {
	return ValidationErrors{{
		Field:   field,
		Tag:     "required",
		Value:   "",
		Message: field + " is required",
	}}
}
