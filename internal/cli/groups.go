package cli

import (
	"github.com/andyle182810/devohub/devo"
	"github.com/spf13/cobra"
)

func (c *CLI) groupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"contact-groups"},
		Short:   "Manage contact groups",
	}

	cmd.AddCommand(c.groupsListCommand())
	cmd.AddCommand(c.groupsGetCommand())
	cmd.AddCommand(c.groupsCreateCommand())
	cmd.AddCommand(c.groupsUpdateCommand())
	cmd.AddCommand(c.groupsDeleteCommand())
	cmd.AddCommand(c.groupsSearchCommand())

	return cmd
}

func (c *CLI) groupsListCommand() *cobra.Command {
	var params devo.ListContactGroupsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contact groups",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.ContactGroups.List(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&params.Search, "search", "", "search term")
	flags.StringSliceVar(&params.SearchFields, "search-field", nil, "field to search, repeatable")
	flags.IntVar(&params.Page, "page", 0, "page number")
	flags.IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}

func (c *CLI) groupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one contact group",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.ContactGroups.Get(cmd.Context(), args[0])
		}),
	}
}

func (c *CLI) groupsCreateCommand() *cobra.Command {
	var request devo.CreateContactGroupRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact group",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, _ []string) (any, error) {
			return client.ContactGroups.Create(cmd.Context(), request)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&request.Name, "name", "", "group name")
	flags.StringVar(&request.Description, "description", "", "group description")
	flags.StringSliceVar(&request.ContactIDs, "contact", nil, "contact ID to add, repeatable")

	return cmd
}

func (c *CLI) groupsUpdateCommand() *cobra.Command {
	var request devo.UpdateContactGroupRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a contact group",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			return client.ContactGroups.Update(cmd.Context(), args[0], request)
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&request.Name, "name", "", "group name")
	flags.StringVar(&request.Description, "description", "", "group description")
	flags.StringSliceVar(&request.ContactIDs, "contact", nil, "contact ID, repeatable")

	return cmd
}

func (c *CLI) groupsDeleteCommand() *cobra.Command {
	var transferTo string

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more contact groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			if len(args) == 1 && transferTo == "" {
				return client.ContactGroups.Delete(cmd.Context(), args[0])
			}

			return client.ContactGroups.DeleteBulk(cmd.Context(), devo.DeleteContactGroupsRequest{
				GroupIDs:           args,
				TransferContactsTo: transferTo,
			})
		}),
	}

	cmd.Flags().StringVar(&transferTo, "transfer-to", "", "group that receives the contacts of deleted groups")

	return cmd
}

func (c *CLI) groupsSearchCommand() *cobra.Command {
	var params devo.SearchContactGroupsParams

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search contact groups",
		Args:  cobra.ExactArgs(1),
		RunE: c.run(func(cmd *cobra.Command, client *devo.Client, args []string) (any, error) {
			params.Query = args[0]

			return client.ContactGroups.Search(cmd.Context(), params)
		}),
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&params.Fields, "field", nil, "field to search, repeatable")
	flags.IntVar(&params.Page, "page", 0, "page number")
	flags.IntVar(&params.Limit, "limit", 0, "page size")

	return cmd
}
