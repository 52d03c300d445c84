package cli

import (
	"github.com/andyle182810/devohub/devo"
	"github.com/spf13/cobra"
)

func (c *CLI) emailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Send email",
	}

	cmd.AddCommand(c.emailSendCommand())

	return cmd
}

func (c *CLI) emailSendCommand() *cobra.Command {
	var params devo.SendEmailParams

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one email",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.Email.SendEmail(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Recipient, "to", "", "recipient address")
	flags.StringVar(&params.Sender, "from", "", "sender address")
	flags.StringVar(&params.Subject, "subject", "", "subject line")
	flags.StringVar(&params.Body, "body", "", "message body, HTML allowed")

	return cmd
}
