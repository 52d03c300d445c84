package cli

import (
	"fmt"
	"time"

	"github.com/andyle182810/devohub/devo"
	"github.com/andyle182810/devohub/pagination"
	"github.com/spf13/cobra"
)

func (c *CLI) messagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Send and track messages on any channel",
	}

	cmd.AddCommand(c.messagesSendCommand())
	cmd.AddCommand(c.messagesGetCommand())
	cmd.AddCommand(c.messagesListCommand())
	cmd.AddCommand(c.messagesStatusCommand())
	cmd.AddCommand(c.messagesResendCommand())
	cmd.AddCommand(c.messagesCancelCommand())

	return cmd
}

func (c *CLI) messagesSendCommand() *cobra.Command {
	var (
		request      devo.SendMessageRequest
		text         string
		payloadJSON  string
		metadataJSON string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			payload, err := parseJSONObject("payload", payloadJSON)
			if err != nil {
				return nil, err
			}

			if payload == nil && text != "" {
				payload = map[string]any{"text": text}
			}

			metadata, err := parseJSONObject("metadata", metadataJSON)
			if err != nil {
				return nil, err
			}

			request.Payload = payload
			request.Metadata = metadata

			return client.Messages.Send(cmd.Context(), request)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&request.Channel, "channel", devo.ChannelSMS, "sms, email, whatsapp or rcs")
	flags.StringVar(&request.To, "to", "", "recipient")
	flags.StringVar(&request.From, "from", "", "sender")
	flags.StringVar(&request.CallbackURL, "callback-url", "", "delivery report URL")
	flags.StringVar(&text, "text", "", "shorthand for --payload '{\"text\":...}'")
	flags.StringVar(&payloadJSON, "payload", "", "channel payload as a JSON object")
	flags.StringVar(&metadataJSON, "metadata", "", "metadata as a JSON object")
	cmd.MarkFlagsMutuallyExclusive("text", "payload")

	return cmd
}

func (c *CLI) messagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one message",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.Messages.Get(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) messagesListCommand() *cobra.Command {
	var (
		params        devo.ListMessagesParams
		after, before string
		page          int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			var err error

			if params.DateSentAfter, err = parseTimeFlag("sent-after", after); err != nil {
				return nil, err
			}

			if params.DateSentBefore, err = parseTimeFlag("sent-before", before); err != nil {
				return nil, err
			}

			if page > 0 {
				params.Offset = pagination.Offset(page, params.Limit)
			}

			return client.Messages.List(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Channel, "channel", "", "filter by channel")
	flags.StringVar(&params.To, "to", "", "filter by recipient")
	flags.StringVar(&params.From, "from", "", "filter by sender")
	flags.StringVar(&params.Status, "status", "", "filter by status")
	flags.StringVar(&after, "sent-after", "", "RFC 3339 lower bound on the send date")
	flags.StringVar(&before, "sent-before", "", "RFC 3339 upper bound on the send date")
	flags.IntVar(&params.Limit, "limit", 0, "page size (default 50)")
	flags.IntVar(&params.Offset, "offset", 0, "number of messages to skip")
	flags.IntVar(&page, "page", 0, "1-based page, converted to an offset")

	return cmd
}

func (c *CLI) messagesStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show the delivery status of a message",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.Messages.GetDeliveryStatus(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) messagesResendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resend <id>",
		Short: "Resend a failed message",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.Messages.Resend(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) messagesCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a message that has not been delivered",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.Messages.Cancel(cmd.Context(), args[0])
		}),
	}
}

func parseTimeFlag(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("--%s must be an RFC 3339 timestamp: %w", flag, err)
	}

	return &parsed, nil
}
