package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fivetwenty-io/xminds-client/internal/config"
	"github.com/fivetwenty-io/xminds-client/internal/constants"
	"github.com/fivetwenty-io/xminds-client/pkg/xmclient"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const keyOutput = "output"

// readPassword prompts for a password on the controlling terminal.
var readPassword = terminalPassword

// globalOptions is the state shared by every command.
type globalOptions struct {
	viper      *viper.Viper
	configFile string
	logLevel   string
	debug      bool

	readPassword func(prompt string) (string, error)
}

// NewRootCommand creates the xminds command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &globalOptions{
		viper:        config.New(),
		readPassword: readPassword,
	}

	cmd := &cobra.Command{
		Use:   "xminds",
		Short: "Crossing Minds API CLI",
		Long: `A command-line interface for the Crossing Minds recommendation API.

Every API operation can be called by name with "xminds call". Settings come
from flags, then XMINDS_API_* environment variables, then the config file
($HOME/.xminds/config.yml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(opts.viper, opts.configFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is $HOME/.xminds/config.yml)")
	flags.String("endpoint", "", "API endpoint URL")
	flags.String("role", "", "account role (root, individual, service)")
	flags.String("email", "", "account email (root and individual roles)")
	flags.String("service-name", "", "service account name (service role)")
	flags.String("database-id", "", "database ID (individual and service roles)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.debug, "debug", false, "log HTTP requests and responses")

	_ = opts.viper.BindPFlag(config.KeyEndpoint, flags.Lookup("endpoint"))
	_ = opts.viper.BindPFlag(config.KeyRole, flags.Lookup("role"))
	_ = opts.viper.BindPFlag(config.KeyEmail, flags.Lookup("email"))
	_ = opts.viper.BindPFlag(config.KeyServiceName, flags.Lookup("service-name"))
	_ = opts.viper.BindPFlag(config.KeyDatabaseID, flags.Lookup("database-id"))
	_ = opts.viper.BindPFlag(keyOutput, flags.Lookup("output"))

	cmd.AddCommand(newVersionCommand(opts, version, commit, date))
	cmd.AddCommand(newOperationsCommand(opts))
	cmd.AddCommand(newCallCommand(opts))
	cmd.AddCommand(newLoginCommand(opts))

	return cmd
}

// output returns the validated output format.
func (o *globalOptions) output() (string, error) {
	format := strings.ToLower(o.viper.GetString(keyOutput))

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

// logger builds the console logger written to w.
func (o *globalOptions) logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil || o.logLevel == "" {
		level = zerolog.WarnLevel
	}

	if o.debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !colorable(w)}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// colorable reports whether w is a terminal that accepts ANSI colors.
func colorable(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// clientConfig assembles the client configuration, prompting for the password
// when none is configured and a terminal is attached.
func (o *globalOptions) clientConfig(cmd *cobra.Command) (*xminds.Config, error) {
	cfg, err := config.FromViper(o.viper)
	if err != nil {
		return nil, err
	}

	if cfg.Role == "" {
		cfg.Role = xminds.RoleRoot
	}

	if cfg.Password == "" {
		password, err := o.readPassword(fmt.Sprintf("Password for %s: ", accountName(cfg)))
		if err != nil {
			return nil, err
		}

		if password == "" {
			return nil, constants.ErrPasswordMissing
		}

		cfg.Password = password
	}

	cfg.Logger = xminds.NewZerologLogger(o.logger(cmd.ErrOrStderr()))
	cfg.Debug = o.debug

	return cfg, nil
}

// connect logs in and returns the client with the configuration it used.
func (o *globalOptions) connect(ctx context.Context, cmd *cobra.Command) (xminds.Client, *xminds.Config, error) {
	cfg, err := o.clientConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	client, err := xmclient.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return client, cfg, nil
}

func accountName(cfg *xminds.Config) string {
	if cfg.Role == xminds.RoleService {
		return cfg.ServiceName
	}

	return cfg.Email
}

func terminalPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", constants.ErrPasswordMissing
	}

	fmt.Fprint(os.Stderr, prompt)

	password, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}
