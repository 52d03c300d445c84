package devo

import (
	"context"
	"time"

	"github.com/andyle182810/devohub/httpclient"
)

const (
	RCSTypeText     = "text"
	RCSTypeRichCard = "rich_card"
)

type RCSService struct {
	service
}

type RCSAccount struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	BrandName  string     `json:"brand_name,omitempty"`
	Status     string     `json:"status,omitempty"`
	IsApproved bool       `json:"is_approved"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

type PageParams struct {
	Page  int
	Limit int
}

// SendOptions carries the optional delivery settings shared by RCS sends.
type SendOptions struct {
	CallbackURL string
	Metadata    map[string]any
}

type RichCard struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	MediaURL    string           `json:"media_url,omitempty"`
	Actions     []map[string]any `json:"actions,omitempty"`
}

type RichCardParams struct {
	To   string
	Card RichCard
	SendOptions
}

type rcsMessageRequest struct {
	To          string         `json:"to"`
	Type        string         `json:"type"`
	Text        string         `json:"text,omitempty"`
	RichCard    *RichCard      `json:"rich_card,omitempty"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type RCSMessage struct {
	ID            string           `json:"id"`
	AccountID     string           `json:"account_id,omitempty"`
	To            string           `json:"to"`
	From          string           `json:"from,omitempty"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	Direction     string           `json:"direction"`
	Text          string           `json:"text,omitempty"`
	RichCard      map[string]any   `json:"rich_card,omitempty"`
	Carousel      map[string]any   `json:"carousel,omitempty"`
	MediaURL      string           `json:"media_url,omitempty"`
	Actions       []map[string]any `json:"actions,omitempty"`
	Suggestions   []map[string]any `json:"suggestions,omitempty"`
	Pricing       map[string]any   `json:"pricing,omitempty"`
	ErrorCode     string           `json:"error_code,omitempty"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	DateCreated   *time.Time       `json:"date_created,omitempty"`
	DateSent      *time.Time       `json:"date_sent,omitempty"`
	DateDelivered *time.Time       `json:"date_delivered,omitempty"`
	DateRead      *time.Time       `json:"date_read,omitempty"`
	DateUpdated   *time.Time       `json:"date_updated,omitempty"`
	Metadata      map[string]any   `json:"metadata,omitempty"`
}

type RCSMessagesResponse struct {
	Messages []RCSMessage `json:"messages"`
	Page     int          `json:"page"`
	Limit    int          `json:"limit"`
	Total    int          `json:"total"`
}

type RCSMessagesParams struct {
	Page   int
	Limit  int
	Status string
	To     string
}

func (s *RCSService) ListAccounts(ctx context.Context, params PageParams) ([]RCSAccount, error) {
	s.logger.Debug().Msg("Fetching RCS accounts")

	query := (&queryBuilder{}).
		positive("page", params.Page).
		positive("limit", params.Limit).
		build()

	return httpclient.GetJSON[[]RCSAccount](ctx, s.http, "rcs/accounts", query...)
}

func (s *RCSService) SendText(ctx context.Context, to, text string, opts SendOptions) (*RCSMessage, error) {
	recipient, err := s.validate.NormalizePhoneNumber("to", to)
	if err != nil {
		return nil, err
	}

	body, err := s.validate.RequireString("text", text)
	if err != nil {
		return nil, err
	}

	return s.send(ctx, rcsMessageRequest{
		To:          recipient,
		Type:        RCSTypeText,
		Text:        body,
		RichCard:    nil,
		CallbackURL: opts.CallbackURL,
		Metadata:    opts.Metadata,
	})
}

func (s *RCSService) SendRichCard(ctx context.Context, params RichCardParams) (*RCSMessage, error) {
	recipient, err := s.validate.NormalizePhoneNumber("to", params.To)
	if err != nil {
		return nil, err
	}

	card := params.Card

	if card.Title, err = s.validate.RequireString("title", card.Title); err != nil {
		return nil, err
	}

	if card.Description, err = s.validate.RequireString("description", card.Description); err != nil {
		return nil, err
	}

	if card.MediaURL != "" {
		if err := s.validate.Var("media_url", card.MediaURL, "url"); err != nil {
			return nil, err
		}
	}

	return s.send(ctx, rcsMessageRequest{
		To:          recipient,
		Type:        RCSTypeRichCard,
		Text:        "",
		RichCard:    &card,
		CallbackURL: params.CallbackURL,
		Metadata:    params.Metadata,
	})
}

func (s *RCSService) send(ctx context.Context, request rcsMessageRequest) (*RCSMessage, error) {
	s.logger.Info().Str("to", request.To).Str("type", request.Type).Msg("Sending RCS message")

	result, err := httpclient.PostJSON[RCSMessage](ctx, s.http, "rcs/messages", request)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *RCSService) GetMessage(ctx context.Context, messageID string) (*RCSMessage, error) {
	id, err := s.requireID("message_id", messageID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("message_id", id).Msg("Fetching RCS message")

	result, err := httpclient.GetJSON[RCSMessage](ctx, s.http, resourcePath("rcs", "messages", id))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *RCSService) ListMessages(ctx context.Context, params RCSMessagesParams) (*RCSMessagesResponse, error) {
	s.logger.Debug().Msg("Fetching RCS messages")

	query := (&queryBuilder{}).
		positive("page", params.Page).
		positive("limit", params.Limit).
		str("status", params.Status).
		str("to", params.To).
		build()

	result, err := httpclient.GetJSON[RCSMessagesResponse](ctx, s.http, "rcs/messages", query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
