// Package cli implements the devo command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/andyle182810/devohub/devo"
	"github.com/andyle182810/devohub/internal/config"
	"github.com/andyle182810/devohub/logutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const appName = "devo"

// CLI holds the state shared by every command.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	logger zerolog.Logger
	client *devo.Client

	envFile  string
	apiKey   string
	baseURL  string
	logLevel string
	verbose  bool
}

func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out:      out,
		errOut:   errOut,
		cfg:      nil,
		logger:   zerolog.Nop(),
		client:   nil,
		envFile:  ".env",
		apiKey:   "",
		baseURL:  "",
		logLevel: "",
		verbose:  false,
	}
}

// RootCommand builds the command tree. Configuration is loaded once, before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Command-line client for the Devo Global Communications API",
		Version:           devo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetOut(c.out)
	root.SetErr(c.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", c.envFile, "dotenv file to read before the environment")
	flags.StringVar(&c.apiKey, "api-key", "", "API key, overrides DEVO_API_KEY")
	flags.StringVar(&c.baseURL, "base-url", "", "API base URL, overrides DEVO_BASE_URL")
	flags.StringVar(&c.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.smsCommand())
	root.AddCommand(c.emailCommand())
	root.AddCommand(c.whatsAppCommand())
	root.AddCommand(c.rcsCommand())
	root.AddCommand(c.contactsCommand())
	root.AddCommand(c.groupsCommand())
	root.AddCommand(c.messagesCommand())

	return root
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("api-key") {
		cfg.APIKey = c.apiKey
	}

	if flags.Changed("base-url") {
		cfg.BaseURL = c.baseURL
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}

	if c.verbose {
		cfg.LogLevel = "debug"
	}

	c.cfg = cfg
	c.logger = logutil.NewLogger(c.errOut, cfg.LogLevel, cfg.LogPretty)

	return nil
}

// apiClient returns the API client, creating it on first use so that commands without
// network access never require an API key.
func (c *CLI) apiClient() (*devo.Client, error) {
	if c.client != nil {
		return c.client, nil
	}

	if c.cfg == nil {
		return nil, fmt.Errorf("%s: configuration not loaded", appName)
	}

	client, err := devo.New(c.cfg.APIKey, c.cfg.ClientOptions(c.logger)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	c.client = client

	return client, nil
}

func (c *CLI) printJSON(value any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

type commandFunc func(cmd *cobra.Command, client *devo.Client, args []string) (any, error)

// run wraps a command body that needs the API client and prints its result as JSON.
func (c *CLI) run(fn commandFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := c.apiClient()
		if err != nil {
			return err
		}

		result, err := fn(cmd, client, args)
		if err != nil {
			return err
		}

		return c.printJSON(result)
	}
}

func parseJSONObject(flag, raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	var object map[string]any
	if err := json.Unmarshal([]byte(raw), &object); err != nil {
		return nil, fmt.Errorf("--%s must be a JSON object: %w", flag, err)
	}

	return object, nil
}
