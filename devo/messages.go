package devo

import (
	"context"
	"net/http"
	"time"

	"github.com/andyle182810/devohub/httpclient"
	"github.com/andyle182810/devohub/pagination"
)

const (
	ChannelSMS      = "sms"
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
	ChannelRCS      = "rcs"
)

type MessagesService struct {
	service
}

// SendMessageRequest is the channel-agnostic send body. Payload is interpreted per channel.
type SendMessageRequest struct {
	Channel     string         `json:"channel"`
	To          string         `json:"to"`
	From        string         `json:"from,omitempty"`
	Payload     map[string]any `json:"payload"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type Message struct {
	ID             string         `json:"id"`
	AccountID      string         `json:"account_id,omitempty"`
	Channel        string         `json:"channel"`
	Type           string         `json:"type,omitempty"`
	To             string         `json:"to"`
	From           string         `json:"from,omitempty"`
	Content        map[string]any `json:"content,omitempty"`
	Status         string         `json:"status"`
	Direction      string         `json:"direction,omitempty"`
	DeliveryStatus map[string]any `json:"delivery_status,omitempty"`
	Pricing        map[string]any `json:"pricing,omitempty"`
	ErrorCode      string         `json:"error_code,omitempty"`
	ErrorMessage   string         `json:"error_message,omitempty"`
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	DateCreated    *time.Time     `json:"date_created,omitempty"`
	DateSent       *time.Time     `json:"date_sent,omitempty"`
	DateDelivered  *time.Time     `json:"date_delivered,omitempty"`
	DateRead       *time.Time     `json:"date_read,omitempty"`
	DateUpdated    *time.Time     `json:"date_updated,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

type MessagesList struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total,omitempty"`
}

type ListMessagesParams struct {
	Channel        string
	To             string
	From           string
	Status         string
	DateSentAfter  *time.Time
	DateSentBefore *time.Time
	// Limit defaults to 50 and is capped at 1000.
	Limit  int
	Offset int
}

// Send delivers a message on any channel. Phone channels require an E.164 recipient, email an address.
func (s *MessagesService) Send(ctx context.Context, request SendMessageRequest) (*Message, error) {
	if err := s.validate.Var("channel", request.Channel, "required,oneof=sms email whatsapp rcs"); err != nil {
		return nil, err
	}

	to, err := s.normalizeRecipient(request.Channel, request.To)
	if err != nil {
		return nil, err
	}

	request.To = to

	if len(request.Payload) == 0 {
		return nil, requiredField("payload")
	}

	s.logger.Info().Str("channel", request.Channel).Str("to", to).Msg("Sending message")

	result, err := httpclient.PostJSON[Message](ctx, s.http, "messages/send", request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", result.ID).Str("status", result.Status).Msg("Message sent")

	return &result, nil
}

func (s *MessagesService) normalizeRecipient(channel, to string) (string, error) {
	if channel == ChannelEmail {
		return s.validate.NormalizeEmail("to", to)
	}

	return s.validate.NormalizePhoneNumber("to", to)
}

func (s *MessagesService) Get(ctx context.Context, messageID string) (*Message, error) {
	id, err := s.requireID("message_id", messageID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("message_id", id).Msg("Fetching message")

	result, err := httpclient.GetJSON[Message](ctx, s.http, resourcePath("messages", id))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *MessagesService) List(ctx context.Context, params ListMessagesParams) (*MessagesList, error) {
	if params.Channel != "" {
		if err := s.validate.Var("channel", params.Channel, "oneof=sms email whatsapp rcs"); err != nil {
			return nil, err
		}
	}

	limit, offset := pagination.Window(params.Limit, params.Offset)

	s.logger.Debug().Str("channel", params.Channel).Int("limit", limit).Msg("Listing messages")

	query := (&queryBuilder{}).
		integer("limit", limit).
		integer("offset", offset).
		str("channel", params.Channel).
		str("to", params.To).
		str("from", params.From).
		str("status", params.Status).
		timestamp("date_sent_after", params.DateSentAfter).
		timestamp("date_sent_before", params.DateSentBefore).
		build()

	result, err := httpclient.GetJSON[MessagesList](ctx, s.http, "messages", query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetDeliveryStatus returns the per-hop delivery report as sent by the API.
func (s *MessagesService) GetDeliveryStatus(ctx context.Context, messageID string) (map[string]any, error) {
	id, err := s.requireID("message_id", messageID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("message_id", id).Msg("Fetching delivery status")

	return httpclient.GetJSON[map[string]any](ctx, s.http, resourcePath("messages", id, "delivery-status"))
}

// Resend queues a failed message again and returns the new message.
func (s *MessagesService) Resend(ctx context.Context, messageID string) (*Message, error) {
	id, err := s.requireID("message_id", messageID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("message_id", id).Msg("Resending message")

	result, err := httpclient.DoJSON[Message](ctx, s.http, http.MethodPost, resourcePath("messages", id, "resend"), nil)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Cancel stops a message that has not been delivered yet.
func (s *MessagesService) Cancel(ctx context.Context, messageID string) (*Message, error) {
	id, err := s.requireID("message_id", messageID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("message_id", id).Msg("Canceling message")

	result, err := httpclient.DeleteJSON[Message](ctx, s.http, resourcePath("messages", id))
	if err != nil {
		return nil, err
	}

	return &result, nil
}
