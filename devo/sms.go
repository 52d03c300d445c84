package devo

import (
	"context"
	"time"

	"github.com/andyle182810/devohub/httpclient"
	"github.com/shopspring/decimal"
)

const defaultNumberRegion = "US"

type SMSService struct {
	service
}

type SendSMSParams struct {
	Recipient string
	Message   string
	Sender    string
	// HIRValidation defaults to true when nil.
	HIRValidation *bool
}

type smsQuickSendRequest struct {
	Sender        string `json:"sender"`
	Recipient     string `json:"recipient"`
	Message       string `json:"message"`
	HIRValidation bool   `json:"hirvalidation"`
}

type SMSQuickSendResponse struct {
	ID                  string         `json:"id"`
	UserID              string         `json:"user_id"`
	TenantID            string         `json:"tenant_id"`
	SenderID            string         `json:"sender_id"`
	Recipient           string         `json:"recipient"`
	Message             string         `json:"message"`
	AccountID           string         `json:"account_id"`
	AccountType         string         `json:"account_type"`
	Status              string         `json:"status"`
	MessageTimeline     map[string]any `json:"message_timeline,omitempty"`
	MessageID           string         `json:"message_id"`
	BulkSMSID           string         `json:"bulksmsid"`
	SentDate            string         `json:"sent_date"`
	Direction           string         `json:"direction"`
	RecipientContactID  string         `json:"recipientcontactid"`
	APIRoute            string         `json:"api_route"`
	APIMode             string         `json:"apimode"`
	QuickSendIdentifier string         `json:"quicksendidentifier"`
	HIRValidation       bool           `json:"hirvalidation"`
}

type Sender struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	GatewaysID  string `json:"gateways_id"`
	PhoneNumber string `json:"phone_number"`
	Number      string `json:"number"`
	IsTest      bool   `json:"istest"`
	Type        string `json:"type"`
}

type SendersResponse struct {
	Senders []Sender `json:"senders"`
}

type BuyNumberParams struct {
	Region                         string
	Number                         string
	NumberType                     string
	AgencyAuthorizedRepresentative string
	AgencyRepresentativeEmail      string
	// IsLongcode defaults to true when nil.
	IsLongcode            *bool
	AgreementLastSentDate *time.Time
	// IsAutomatedEnabled defaults to true when nil.
	IsAutomatedEnabled *bool
}

type numberPurchaseRequest struct {
	Region                         string     `json:"region"`
	Number                         string     `json:"number"`
	NumberType                     string     `json:"number_type"`
	IsLongcode                     bool       `json:"is_longcode"`
	AgreementLastSentDate          *time.Time `json:"agreement_last_sent_date,omitempty"`
	AgencyAuthorizedRepresentative string     `json:"agency_authorized_representative"`
	AgencyRepresentativeEmail      string     `json:"agency_representative_email"`
	IsAutomatedEnabled             bool       `json:"is_automated_enabled"`
}

type RegionInformation struct {
	RegionType string `json:"region_type"`
	RegionName string `json:"region_name"`
}

type CostInformation struct {
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	SetupCost   decimal.Decimal `json:"setup_cost"`
	Currency    string          `json:"currency"`
}

type NumberFeature struct {
	Name               string            `json:"name"`
	Reservable         bool              `json:"reservable"`
	RegionID           string            `json:"region_id"`
	NumberType         string            `json:"number_type"`
	Quickship          bool              `json:"quickship"`
	RegionInformation  RegionInformation `json:"region_information"`
	PhoneNumber        string            `json:"phone_number"`
	CostInformation    CostInformation   `json:"cost_information"`
	BestEffort         bool              `json:"best_effort"`
	NumberProviderType string            `json:"number_provider_type"`
}

type NumberPurchaseResponse struct {
	Features []NumberFeature `json:"features"`
}

type NumberInfo struct {
	Features []NumberFeature `json:"features"`
}

type AvailableNumbersResponse struct {
	Numbers []NumberInfo `json:"numbers"`
}

type AvailableNumbersParams struct {
	// Region is an ISO country code and defaults to US.
	Region       string
	Page         int
	Limit        int
	Capabilities []string
	Type         string
	Prefix       string
}

// SendSMS sends one message through the quick-send endpoint.
func (s *SMSService) SendSMS(ctx context.Context, params SendSMSParams) (*SMSQuickSendResponse, error) {
	recipient, err := s.validate.NormalizePhoneNumber("recipient", params.Recipient)
	if err != nil {
		return nil, err
	}

	message, err := s.validate.RequireString("message", params.Message)
	if err != nil {
		return nil, err
	}

	sender, err := s.validate.RequireString("sender", params.Sender)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("recipient", recipient).Str("sender", sender).Msg("Sending SMS")

	body := smsQuickSendRequest{
		Sender:        sender,
		Recipient:     recipient,
		Message:       message,
		HIRValidation: boolOrDefault(params.HIRValidation, true),
	}

	result, err := httpclient.PostJSON[SMSQuickSendResponse](ctx, s.http, "user-api/sms/quick-send", body)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", result.ID).Str("status", result.Status).Msg("SMS sent")

	return &result, nil
}

func (s *SMSService) GetSenders(ctx context.Context) (*SendersResponse, error) {
	s.logger.Debug().Msg("Fetching senders")

	result, err := httpclient.GetJSON[SendersResponse](ctx, s.http, "user-api/me/senders")
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *SMSService) BuyNumber(ctx context.Context, params BuyNumberParams) (*NumberPurchaseResponse, error) {
	region, err := s.validate.RequireString("region", params.Region)
	if err != nil {
		return nil, err
	}

	number, err := s.validate.NormalizePhoneNumber("number", params.Number)
	if err != nil {
		return nil, err
	}

	numberType, err := s.validate.RequireString("number_type", params.NumberType)
	if err != nil {
		return nil, err
	}

	representative, err := s.validate.RequireString(
		"agency_authorized_representative", params.AgencyAuthorizedRepresentative)
	if err != nil {
		return nil, err
	}

	email, err := s.validate.NormalizeEmail("agency_representative_email", params.AgencyRepresentativeEmail)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("number", number).Str("region", region).Msg("Purchasing number")

	body := numberPurchaseRequest{
		Region:                         region,
		Number:                         number,
		NumberType:                     numberType,
		IsLongcode:                     boolOrDefault(params.IsLongcode, true),
		AgreementLastSentDate:          params.AgreementLastSentDate,
		AgencyAuthorizedRepresentative: representative,
		AgencyRepresentativeEmail:      email,
		IsAutomatedEnabled:             boolOrDefault(params.IsAutomatedEnabled, true),
	}

	result, err := httpclient.PostJSON[NumberPurchaseResponse](ctx, s.http, "user-api/numbers/buy", body)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("features", len(result.Features)).Msg("Number purchased")

	return &result, nil
}

func (s *SMSService) GetAvailableNumbers(
	ctx context.Context,
	params AvailableNumbersParams,
) (*AvailableNumbersResponse, error) {
	region := params.Region
	if region == "" {
		region = defaultNumberRegion
	}

	s.logger.Debug().Str("region", region).Msg("Fetching available numbers")

	query := (&queryBuilder{}).
		str("region", region).
		positive("page", params.Page).
		positive("limit", params.Limit).
		list("capabilities", params.Capabilities).
		str("type", params.Type).
		str("prefix", params.Prefix).
		build()

	result, err := httpclient.GetJSON[AvailableNumbersResponse](ctx, s.http, "user-api/numbers", query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
