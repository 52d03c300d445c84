package cli

import (
	"github.com/andyle182810/devohub/devo"
	"github.com/andyle182810/devohub/pagination"
	"github.com/spf13/cobra"
)

func (c *CLI) contactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage contacts",
	}

	cmd.AddCommand(c.contactsListCommand())
	cmd.AddCommand(c.contactsGetCommand())
	cmd.AddCommand(c.contactsCreateCommand())
	cmd.AddCommand(c.contactsUpdateCommand())
	cmd.AddCommand(c.contactsDeleteCommand())

	return cmd
}

func contactFlags(cmd *cobra.Command, params *devo.ContactParams) {
	flags := cmd.Flags()
	flags.StringVar(&params.PhoneNumber, "phone", "", "phone number in E.164 format")
	flags.StringVar(&params.Email, "email", "", "email address")
	flags.StringVar(&params.FirstName, "first-name", "", "first name")
	flags.StringVar(&params.LastName, "last-name", "", "last name")
	flags.StringVar(&params.Company, "company", "", "company")
}

func (c *CLI) contactsListCommand() *cobra.Command {
	var (
		params devo.ListContactsParams
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			if page > 0 {
				params.Offset = pagination.Offset(page, params.Limit)
			}

			return client.Contacts.List(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.IntVar(&params.Limit, "limit", 0, "page size (default 50)")
	flags.IntVar(&params.Offset, "offset", 0, "number of contacts to skip")
	flags.IntVar(&page, "page", 0, "1-based page, converted to an offset")
	flags.StringVar(&params.PhoneNumber, "phone", "", "filter by phone number")
	flags.StringVar(&params.Email, "email", "", "filter by email")
	flags.StringVar(&params.Company, "company", "", "filter by company")

	return cmd
}

func (c *CLI) contactsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.Contacts.Get(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) contactsCreateCommand() *cobra.Command {
	var params devo.ContactParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.Contacts.Create(cmd.Context(), params)
		}),
	}

	contactFlags(cmd, &params)

	return cmd
}

func (c *CLI) contactsUpdateCommand() *cobra.Command {
	var params devo.ContactParams

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a contact",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.Contacts.Update(cmd.Context(), args[0], params)
		}),
	}

	contactFlags(cmd, &params)

	return cmd
}

func (c *CLI) contactsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			deleted, err := client.Contacts.Delete(cmd.Context(), args[0])
			if err != nil {
				return nil, err
			}

			return map[string]any{"id": args[0], "deleted": deleted}, nil
		}),
	}
}
