package cli

import (
	"github.com/andyle182810/devohub/devo"
	"github.com/spf13/cobra"
)

func (c *CLI) rcsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rcs",
		Short: "Send RCS messages",
	}

	cmd.AddCommand(c.rcsAccountsCommand())
	cmd.AddCommand(c.rcsSendCommand())
	cmd.AddCommand(c.rcsCardCommand())
	cmd.AddCommand(c.rcsMessageCommand())
	cmd.AddCommand(c.rcsMessagesCommand())

	return cmd
}

func (c *CLI) rcsAccountsCommand() *cobra.Command {
	var params devo.PageParams

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List RCS agents",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.RCS.ListAccounts(cmd.Context(), params)
		}),
	}

	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}

func (c *CLI) rcsSendCommand() *cobra.Command {
	var (
		to, text string
		opts     devo.SendOptions
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text message",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.RCS.SendText(cmd.Context(), to, text, opts)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&to, "to", "", "recipient in E.164 format")
	flags.StringVar(&text, "text", "", "message text")
	flags.StringVar(&opts.CallbackURL, "callback-url", "", "delivery report URL")

	return cmd
}

func (c *CLI) rcsCardCommand() *cobra.Command {
	var params devo.RichCardParams

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Send a rich card",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.RCS.SendRichCard(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.To, "to", "", "recipient in E.164 format")
	flags.StringVar(&params.Card.Title, "title", "", "card title")
	flags.StringVar(&params.Card.Description, "description", "", "card description")
	flags.StringVar(&params.Card.MediaURL, "media-url", "", "image or video URL")
	flags.StringVar(&params.CallbackURL, "callback-url", "", "delivery report URL")

	return cmd
}

func (c *CLI) rcsMessageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "message <id>",
		Short: "Show one RCS message",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.RCS.GetMessage(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) rcsMessagesCommand() *cobra.Command {
	var params devo.RCSMessagesParams

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List RCS messages",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.RCS.ListMessages(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Status, "status", "", "filter by status")
	flags.StringVar(&params.To, "to", "", "filter by recipient")
	flags.IntVar(&params.Page, "page", 0, "page number")
	flags.IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}
