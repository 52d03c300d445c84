package devo

import (
	"context"
	"net/http"
	"time"

	"github.com/andyle182810/devohub/httpclient"
	"github.com/andyle182810/devohub/pagination"
	"github.com/andyle182810/devohub/validator"
)

type ContactsService struct {
	service
}

type Contact struct {
	ID               string         `json:"id"`
	AccountID        string         `json:"account_id,omitempty"`
	PhoneNumber      string         `json:"phone_number,omitempty"`
	Email            string         `json:"email,omitempty"`
	FirstName        string         `json:"first_name,omitempty"`
	LastName         string         `json:"last_name,omitempty"`
	Company          string         `json:"company,omitempty"`
	OptInSMS         bool           `json:"opt_in_sms"`
	OptInEmail       bool           `json:"opt_in_email"`
	OptInWhatsApp    bool           `json:"opt_in_whatsapp"`
	OptInRCS         bool           `json:"opt_in_rcs"`
	PreferredChannel string         `json:"preferred_channel,omitempty"`
	Timezone         string         `json:"timezone,omitempty"`
	Language         string         `json:"language,omitempty"`
	Tags             []string       `json:"tags,omitempty"`
	Groups           []string       `json:"groups,omitempty"`
	DateCreated      *time.Time     `json:"date_created,omitempty"`
	DateUpdated      *time.Time     `json:"date_updated,omitempty"`
	LastContacted    *time.Time     `json:"last_contacted,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// ContactParams holds the writable contact fields. Empty fields are left out of the request.
type ContactParams struct {
	PhoneNumber string         `json:"phone_number,omitempty"`
	Email       string         `json:"email,omitempty"`
	FirstName   string         `json:"first_name,omitempty"`
	LastName    string         `json:"last_name,omitempty"`
	Company     string         `json:"company,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type ContactsList struct {
	Contacts   []Contact `json:"contacts"`
	Page       int       `json:"page,omitempty"`
	Limit      int       `json:"limit,omitempty"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages,omitempty"`
}

type ListContactsParams struct {
	// Limit defaults to 50 and is capped at 1000.
	Limit       int
	Offset      int
	PhoneNumber string
	Email       string
	Company     string
}

// Create adds a contact. At least one of PhoneNumber and Email is required.
func (s *ContactsService) Create(ctx context.Context, params ContactParams) (*Contact, error) {
	if params.PhoneNumber == "" && params.Email == "" {
		return nil, validator.ValidationErrors{{
			Field:   "phone_number",
			Tag:     "required_without",
			Value:   "",
			Message: "phone_number or email is required",
		}}
	}

	body, err := s.normalize(params)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Msg("Creating contact")

	result, err := httpclient.PostJSON[Contact](ctx, s.http, "contacts", body)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactsService) Get(ctx context.Context, contactID string) (*Contact, error) {
	id, err := s.requireID("contact_id", contactID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("contact_id", id).Msg("Fetching contact")

	result, err := httpclient.GetJSON[Contact](ctx, s.http, resourcePath("contacts", id))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactsService) Update(ctx context.Context, contactID string, params ContactParams) (*Contact, error) {
	id, err := s.requireID("contact_id", contactID)
	if err != nil {
		return nil, err
	}

	body, err := s.normalize(params)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("contact_id", id).Msg("Updating contact")

	result, err := httpclient.PutJSON[Contact](ctx, s.http, resourcePath("contacts", id), body)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete removes a contact and reports whether the API answered with a 2xx status.
func (s *ContactsService) Delete(ctx context.Context, contactID string) (bool, error) {
	id, err := s.requireID("contact_id", contactID)
	if err != nil {
		return false, err
	}

	s.logger.Info().Str("contact_id", id).Msg("Deleting contact")

	resp, err := s.http.Request(ctx, http.MethodDelete, resourcePath("contacts", id))
	if err != nil {
		return false, err
	}

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices, nil
}

func (s *ContactsService) List(ctx context.Context, params ListContactsParams) (*ContactsList, error) {
	limit, offset := pagination.Window(params.Limit, params.Offset)

	query := (&queryBuilder{}).
		integer("limit", limit).
		integer("offset", offset)

	if params.PhoneNumber != "" {
		phone, err := s.validate.NormalizePhoneNumber("phone_number", params.PhoneNumber)
		if err != nil {
			return nil, err
		}

		query.str("phone_number", phone)
	}

	if params.Email != "" {
		email, err := s.validate.NormalizeEmail("email", params.Email)
		if err != nil {
			return nil, err
		}

		query.str("email", email)
	}

	query.str("company", params.Company)

	s.logger.Debug().Int("limit", limit).Int("offset", offset).Msg("Listing contacts")

	result, err := httpclient.GetJSON[ContactsList](ctx, s.http, "contacts", query.build()...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactsService) normalize(params ContactParams) (ContactParams, error) {
	if params.PhoneNumber != "" {
		phone, err := s.validate.NormalizePhoneNumber("phone_number", params.PhoneNumber)
		if err != nil {
			return params, err
		}

		params.PhoneNumber = phone
	}

	if params.Email != "" {
		email, err := s.validate.NormalizeEmail("email", params.Email)
		if err != nil {
			return params, err
		}

		params.Email = email
	}

	return params, nil
}
