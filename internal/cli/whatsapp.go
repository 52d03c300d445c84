package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/andyle182810/devohub/devo"
	"github.com/spf13/cobra"
)

func (c *CLI) whatsAppCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "whatsapp",
		Aliases: []string{"wa"},
		Short:   "Send WhatsApp messages and manage templates",
	}

	cmd.AddCommand(c.whatsAppAccountsCommand())
	cmd.AddCommand(c.whatsAppSendCommand())
	cmd.AddCommand(c.whatsAppMessageCommand())
	cmd.AddCommand(c.whatsAppTemplatesCommand())
	cmd.AddCommand(c.whatsAppTemplateCommand())
	cmd.AddCommand(c.whatsAppUploadCommand())

	return cmd
}

func (c *CLI) whatsAppAccountsCommand() *cobra.Command {
	var (
		params       devo.WhatsAppAccountsParams
		approvedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List WhatsApp business accounts",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			if approvedOnly {
				params.IsApproved = &approvedOnly
			}

			return client.WhatsApp.ListAccounts(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.BoolVar(&approvedOnly, "approved", false, "only approved accounts")
	flags.StringVar(&params.Search, "search", "", "search term")
	flags.IntVar(&params.Page, "page", 0, "page number")
	flags.IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}

func (c *CLI) whatsAppSendCommand() *cobra.Command {
	var to, text, template, language, accountID string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text or template message",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			request := devo.WhatsAppMessageRequest{
				To:          to,
				Type:        "",
				Text:        nil,
				Template:    nil,
				AccountID:   accountID,
				CallbackURL: "",
				Metadata:    nil,
			}

			if template != "" {
				request.Template = &devo.TemplateMessage{
					Name:       template,
					Language:   devo.TemplateLanguage{Code: language},
					Components: nil,
				}
			} else {
				request.Text = &devo.WhatsAppText{Body: text}
			}

			return client.WhatsApp.SendMessage(cmd.Context(), request)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&to, "to", "", "recipient in E.164 format")
	flags.StringVar(&text, "text", "", "message text")
	flags.StringVar(&template, "template", "", "approved template name")
	flags.StringVar(&language, "language", "en_US", "template language code")
	flags.StringVar(&accountID, "account", "", "sending account ID")
	cmd.MarkFlagsMutuallyExclusive("text", "template")

	return cmd
}

func (c *CLI) whatsAppMessageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "message <id>",
		Short: "Show one WhatsApp message",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.WhatsApp.GetMessage(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) whatsAppTemplatesCommand() *cobra.Command {
	var params devo.WhatsAppTemplatesParams

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List message templates",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.WhatsApp.ListTemplates(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.AccountID, "account", "", "account ID")
	flags.StringVar(&params.Category, "category", "", "AUTHENTICATION, MARKETING or UTILITY")
	flags.StringVar(&params.Search, "search", "", "search term")
	flags.IntVar(&params.Page, "page", 0, "page number")
	flags.IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}

func (c *CLI) whatsAppTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template <name>",
		Short: "Show one message template",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.WhatsApp.GetTemplate(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) whatsAppUploadCommand() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a media file",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			file, err := os.Open(args[0])
			if err != nil {
				return nil, fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			mimeType := contentType
			if mimeType == "" {
				mimeType = mime.TypeByExtension(filepath.Ext(args[0]))
			}

			if mimeType == "" {
				mimeType = "application/octet-stream"
			}

			return client.WhatsApp.UploadFile(cmd.Context(), filepath.Base(args[0]), mimeType, file)
		}),
	}

	cmd.Flags().StringVar(&contentType, "type", "", "MIME type, guessed from the extension when empty")

	return cmd
}
