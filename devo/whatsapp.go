package devo

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/andyle182810/devohub/httpclient"
	"github.com/andyle182810/devohub/validator"
)

const (
	WhatsAppTypeText     = "text"
	WhatsAppTypeTemplate = "template"
)

type WhatsAppService struct {
	service
}

type WhatsAppAccount struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	IsApproved   bool       `json:"is_approved"`
	BrandName    string     `json:"brand_name,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	ContactPhone string     `json:"contact_phone,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type WhatsAppAccountsResponse struct {
	Accounts []WhatsAppAccount `json:"accounts"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int               `json:"total"`
	HasNext  bool              `json:"has_next"`
}

type WhatsAppAccountsParams struct {
	Page       int
	Limit      int
	IsApproved *bool
	Search     string
}

type SendNormalMessageParams struct {
	To      string
	Message string
	// AccountID selects the sending account; the account default is used when empty.
	AccountID string
}

type normalMessageRequest struct {
	To        string `json:"to"`
	Message   string `json:"message"`
	AccountID string `json:"account_id,omitempty"`
}

type WhatsAppSendResponse struct {
	Success   bool       `json:"success"`
	MessageID string     `json:"message_id"`
	Status    string     `json:"status"`
	To        string     `json:"to"`
	AccountID string     `json:"account_id,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type WhatsAppText struct {
	Body string `json:"body"`
}

type TemplateLanguage struct {
	Code string `json:"code"`
}

type TemplateParameter struct {
	Type  string         `json:"type"`
	Text  string         `json:"text,omitempty"`
	Image map[string]any `json:"image,omitempty"`
}

type TemplateMessageComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

type TemplateMessage struct {
	Name       string                     `json:"name"`
	Language   TemplateLanguage           `json:"language"`
	Components []TemplateMessageComponent `json:"components,omitempty"`
}

// WhatsAppMessageRequest is a text or template message. Exactly one of Text and Template is set.
type WhatsAppMessageRequest struct {
	To          string           `json:"to"`
	Type        string           `json:"type"`
	Text        *WhatsAppText    `json:"text,omitempty"`
	Template    *TemplateMessage `json:"template,omitempty"`
	AccountID   string           `json:"account_id,omitempty"`
	CallbackURL string           `json:"callback_url,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
}

type WhatsAppMessage struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"account_id,omitempty"`
	To            string            `json:"to"`
	From          string            `json:"from,omitempty"`
	Type          string            `json:"type"`
	Status        string            `json:"status"`
	Direction     string            `json:"direction"`
	Text          map[string]string `json:"text,omitempty"`
	Template      map[string]any    `json:"template,omitempty"`
	Media         map[string]any    `json:"media,omitempty"`
	Pricing       map[string]any    `json:"pricing,omitempty"`
	ErrorCode     string            `json:"error_code,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	DateCreated   *time.Time        `json:"date_created,omitempty"`
	DateSent      *time.Time        `json:"date_sent,omitempty"`
	DateDelivered *time.Time        `json:"date_delivered,omitempty"`
	DateRead      *time.Time        `json:"date_read,omitempty"`
	DateUpdated   *time.Time        `json:"date_updated,omitempty"`
	Metadata      map[string]any    `json:"metadata,omitempty"`
}

type TemplateExample struct {
	HeaderText []string   `json:"header_text,omitempty"`
	BodyText   [][]string `json:"body_text,omitempty"`
}

type TemplateButton struct {
	Type        string   `json:"type"`
	Text        string   `json:"text,omitempty"`
	URL         string   `json:"url,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	OTPType     string   `json:"otp_type,omitempty"`
	Example     []string `json:"example,omitempty"`
}

type TemplateComponent struct {
	Type                      string           `json:"type"`
	Format                    string           `json:"format,omitempty"`
	Text                      string           `json:"text,omitempty"`
	Buttons                   []TemplateButton `json:"buttons,omitempty"`
	Example                   *TemplateExample `json:"example,omitempty"`
	AddSecurityRecommendation *bool            `json:"add_security_recommendation,omitempty"`
	CodeExpirationMinutes     *int             `json:"code_expiration_minutes,omitempty"`
}

type WhatsAppTemplateRequest struct {
	Name       string              `json:"name"       validate:"required"`
	Language   string              `json:"language"   validate:"required"`
	Category   string              `json:"category"   validate:"required,oneof=AUTHENTICATION MARKETING UTILITY"`
	Components []TemplateComponent `json:"components" validate:"required,min=1"`
}

type WhatsAppTemplate struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Language   string              `json:"language"`
	Category   string              `json:"category"`
	Status     string              `json:"status"`
	Components []TemplateComponent `json:"components,omitempty"`
}

type WhatsAppTemplatesResponse struct {
	Templates []WhatsAppTemplate `json:"templates"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Total     int                `json:"total"`
	HasNext   bool               `json:"has_next"`
}

type WhatsAppTemplatesParams struct {
	AccountID string
	Category  string
	Search    string
	Page      int
	Limit     int
}

type UploadFileResponse struct {
	FileID    string     `json:"file_id"`
	Filename  string     `json:"filename"`
	FileSize  int64      `json:"file_size"`
	MimeType  string     `json:"mime_type"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (s *WhatsAppService) ListAccounts(
	ctx context.Context,
	params WhatsAppAccountsParams,
) (*WhatsAppAccountsResponse, error) {
	s.logger.Debug().Msg("Fetching WhatsApp accounts")

	query := (&queryBuilder{}).
		positive("page", params.Page).
		positive("limit", params.Limit).
		boolean("is_approved", params.IsApproved).
		str("search", params.Search).
		build()

	result, err := httpclient.GetJSON[WhatsAppAccountsResponse](ctx, s.http, "whatsapp/accounts", query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SendNormalMessage sends a plain text message outside of the template flow.
func (s *WhatsAppService) SendNormalMessage(
	ctx context.Context,
	params SendNormalMessageParams,
) (*WhatsAppSendResponse, error) {
	to, err := s.validate.NormalizePhoneNumber("to", params.To)
	if err != nil {
		return nil, err
	}

	message, err := s.validate.RequireString("message", params.Message)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("to", to).Msg("Sending WhatsApp message")

	body := normalMessageRequest{To: to, Message: message, AccountID: params.AccountID}

	result, err := httpclient.PostJSON[WhatsAppSendResponse](ctx, s.http, "whatsapp/send-normal-message", body)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SendMessage sends a text or template message.
func (s *WhatsAppService) SendMessage(
	ctx context.Context,
	request WhatsAppMessageRequest,
) (*WhatsAppMessage, error) {
	to, err := s.validate.NormalizePhoneNumber("to", request.To)
	if err != nil {
		return nil, err
	}

	request.To = to

	if err := s.validateMessageContent(&request); err != nil {
		return nil, err
	}

	s.logger.Info().Str("to", to).Str("type", request.Type).Msg("Sending WhatsApp message")

	result, err := httpclient.PostJSON[WhatsAppMessage](ctx, s.http, "whatsapp/messages", request)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *WhatsAppService) SendText(ctx context.Context, to, text string) (*WhatsAppMessage, error) {
	return s.SendMessage(ctx, WhatsAppMessageRequest{
		To:          to,
		Type:        WhatsAppTypeText,
		Text:        &WhatsAppText{Body: text},
		Template:    nil,
		AccountID:   "",
		CallbackURL: "",
		Metadata:    nil,
	})
}

func (s *WhatsAppService) SendTemplate(
	ctx context.Context,
	to string,
	template TemplateMessage,
) (*WhatsAppMessage, error) {
	return s.SendMessage(ctx, WhatsAppMessageRequest{
		To:          to,
		Type:        WhatsAppTypeTemplate,
		Text:        nil,
		Template:    &template,
		AccountID:   "",
		CallbackURL: "",
		Metadata:    nil,
	})
}

func (s *WhatsAppService) validateMessageContent(request *WhatsAppMessageRequest) error {
	switch {
	case request.Type == "" && request.Template != nil:
		request.Type = WhatsAppTypeTemplate
	case request.Type == "":
		request.Type = WhatsAppTypeText
	}

	switch request.Type {
	case WhatsAppTypeText:
		if request.Text == nil {
			return requiredField("text")
		}

		body, err := s.validate.RequireString("text", request.Text.Body)
		if err != nil {
			return err
		}

		request.Text = &WhatsAppText{Body: body}
	case WhatsAppTypeTemplate:
		if request.Template == nil {
			return requiredField("template")
		}

		if _, err := s.validate.RequireString("template.name", request.Template.Name); err != nil {
			return err
		}
	default:
		return s.validate.Var("type", request.Type, "oneof=text template")
	}

	return nil
}

func (s *WhatsAppService) GetMessage(ctx context.Context, messageID string) (*WhatsAppMessage, error) {
	id, err := s.requireID("message_id", messageID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("message_id", id).Msg("Fetching WhatsApp message")

	result, err := httpclient.GetJSON[WhatsAppMessage](ctx, s.http, resourcePath("whatsapp", "messages", id))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateTemplate submits a message template for approval under accountID.
func (s *WhatsAppService) CreateTemplate(
	ctx context.Context,
	accountID string,
	template WhatsAppTemplateRequest,
) (*WhatsAppTemplate, error) {
	account, err := s.requireID("account_id", accountID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Validate(template); err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", account).Str("name", template.Name).Msg("Creating WhatsApp template")

	result, err := httpclient.PostJSON[WhatsAppTemplate](ctx, s.http, "whatsapp/templates", template,
		httpclient.WithQuery("account_id", account))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *WhatsAppService) ListTemplates(
	ctx context.Context,
	params WhatsAppTemplatesParams,
) (*WhatsAppTemplatesResponse, error) {
	s.logger.Debug().Str("account_id", params.AccountID).Msg("Fetching WhatsApp templates")

	query := (&queryBuilder{}).
		str("account_id", params.AccountID).
		str("category", params.Category).
		str("search", params.Search).
		positive("page", params.Page).
		positive("limit", params.Limit).
		build()

	result, err := httpclient.GetJSON[WhatsAppTemplatesResponse](ctx, s.http, "whatsapp/templates", query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *WhatsAppService) GetTemplate(ctx context.Context, name string) (*WhatsAppTemplate, error) {
	templateName, err := s.requireID("template_name", name)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("name", templateName).Msg("Fetching WhatsApp template")

	result, err := httpclient.GetJSON[WhatsAppTemplate](ctx, s.http, resourcePath("whatsapp", "templates", templateName))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UploadFile uploads media for later use in messages. Uploads are sent once and never retried.
func (s *WhatsAppService) UploadFile(
	ctx context.Context,
	fileName string,
	contentType string,
	content io.Reader,
) (*UploadFileResponse, error) {
	name, err := s.validate.RequireString("filename", fileName)
	if err != nil {
		return nil, err
	}

	mimeType, err := s.validate.RequireString("content_type", contentType)
	if err != nil {
		return nil, err
	}

	if content == nil {
		return nil, requiredField("file")
	}

	s.logger.Info().Str("filename", name).Str("content_type", mimeType).Msg("Uploading WhatsApp file")

	resp, err := s.http.Request(ctx, http.MethodPost, "whatsapp/upload",
		httpclient.WithMultipartFile("file", name, mimeType, content))
	if err != nil {
		return nil, err
	}

	var result UploadFileResponse
	if err := resp.Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func requiredField(field string) validator.ValidationErrors {
	return validator.ValidationErrors{{
		Field:   field,
		Tag:     "required",
		Value:   "",
		Message: field + " is required",
	}}
}
