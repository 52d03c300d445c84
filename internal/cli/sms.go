package cli

import (
	"github.com/andyle182810/devohub/devo"
	"github.com/spf13/cobra"
)

func (c *CLI) smsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sms",
		Short: "Send SMS and manage numbers",
	}

	cmd.AddCommand(c.smsSendCommand())
	cmd.AddCommand(c.smsSendersCommand())
	cmd.AddCommand(c.smsNumbersCommand())
	cmd.AddCommand(c.smsBuyCommand())

	return cmd
}

func (c *CLI) smsSendCommand() *cobra.Command {
	var (
		params devo.SendSMSParams
		noHIR  bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one SMS through quick-send",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			if noHIR {
				disabled := false
				params.HIRValidation = &disabled
			}

			return client.SMS.SendSMS(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Recipient, "to", "", "recipient in E.164 format")
	flags.StringVar(&params.Sender, "from", "", "sender ID or number")
	flags.StringVar(&params.Message, "message", "", "message text")
	flags.BoolVar(&noHIR, "no-hir", false, "skip HIR validation")

	return cmd
}

func (c *CLI) smsSendersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "senders",
		Short: "List the senders available to the account",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.SMS.GetSenders(cmd.Context())
		}),
	}
}

func (c *CLI) smsNumbersCommand() *cobra.Command {
	var params devo.AvailableNumbersParams

	cmd := &cobra.Command{
		Use:   "numbers",
		Short: "List numbers available for purchase",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.SMS.GetAvailableNumbers(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Region, "region", "", "ISO country code (default US)")
	flags.StringSliceVar(&params.Capabilities, "capability", nil, "required capability, repeatable")
	flags.StringVar(&params.Type, "type", "", "number type")
	flags.StringVar(&params.Prefix, "prefix", "", "number prefix")
	flags.IntVar(&params.Page, "page", 0, "page number")
	flags.IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}

func (c *CLI) smsBuyCommand() *cobra.Command {
	var params devo.BuyNumberParams

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Purchase a number",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.SMS.BuyNumber(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Region, "region", "", "ISO country code")
	flags.StringVar(&params.Number, "number", "", "number to buy in E.164 format")
	flags.StringVar(&params.NumberType, "type", "", "number type")
	flags.StringVar(&params.AgencyAuthorizedRepresentative, "representative", "", "authorized representative name")
	flags.StringVar(&params.AgencyRepresentativeEmail, "representative-email", "", "authorized representative email")

	return cmd
}
