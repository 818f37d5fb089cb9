package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag and configuration keys shared by all subcommands.
const (
	keyConfig   = "config"
	keyLogLevel = "log-level"
	keyInput    = "input"
	keyEncoding = "encoding"
)

// CodepointsCommand holds the configuration for the codepoints commands.
type CodepointsCommand struct {
	v      *viper.Viper
	logger *slog.Logger
}

// GetRootCommand creates and returns the root command with all subcommands.
func GetRootCommand() (*cobra.Command, *CodepointsCommand) {
	cc := &CodepointsCommand{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "codepoints",
		Short: "Inspect the Unicode code points of text",
		Long: `Inspect the Unicode code points of text.

Text is taken from the command line arguments or, with --input, from a file in
UTF-8 or UTF-16. Every flag can also be set through a CODEPOINTS_ environment
variable (CODEPOINTS_LOG_LEVEL=debug) or a config file given with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.configure(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "Config file (YAML, TOML or JSON)")
	flags.String(keyLogLevel, "warn", "Log level (debug, info, warn, error)")
	flags.StringP(keyInput, "i", "", "Read text from this file instead of the arguments")
	flags.StringP(keyEncoding, "e", "utf-8", "Encoding of --input: utf-8, utf-16, utf-16le or utf-16be")

	AddInspectCommand(root, cc)
	AddOffsetCommand(root, cc)
	return root, cc
}

// configure binds flags, environment and config file, and sets up logging.
func (cc *CodepointsCommand) configure(cmd *cobra.Command) error {
	cc.v.SetEnvPrefix("CODEPOINTS")
	cc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cc.v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := cc.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return fmt.Errorf("binding flags: %w", bindErr)
	}

	if file := cc.v.GetString(keyConfig); file != "" {
		cc.v.SetConfigFile(file)
		if err := cc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	cc.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: parseLogLevel(cc.v.GetString(keyLogLevel)),
	}))
	cc.logger.Debug("configured", "config", cc.v.ConfigFileUsed(), "log_level", cc.v.GetString(keyLogLevel))
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// readText returns the UTF-16 text to work on.
func (cc *CodepointsCommand) readText(args []string) ([]uint16, error) {
	path := cc.v.GetString(keyInput)
	if path == "" {
		if len(args) == 0 {
			return nil, fmt.Errorf("no text given: pass arguments or --%s", keyInput)
		}
		return encodeArgs(args), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	text, err := decodeInput(f, cc.v.GetString(keyEncoding))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cc.logger.Debug("read input", "path", path, "units", len(text))
	return text, nil
}
