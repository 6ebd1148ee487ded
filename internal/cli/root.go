package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/osvaldoandrade/mtvalidate/internal/platform"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	JSONOutput  bool
	LogLevel    string
	LogFormat   string
	SchemaDir   string
	Mode        string
	JournalPath string
	FastJournal bool
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		LogLevel:    envDefault("MTVALIDATE_LOG_LEVEL", "info"),
		LogFormat:   envDefault("MTVALIDATE_LOG_FORMAT", "text"),
		SchemaDir:   envDefault("MTVALIDATE_SCHEMAS", ""),
		Mode:        envDefault("MTVALIDATE_MODE", "lenient"),
		JournalPath: envDefault("MTVALIDATE_JOURNAL", ""),
		FastJournal: envBoolDefault("MTVALIDATE_JOURNAL_FAST", true),
	}
	cmd := &cobra.Command{
		Use:           "mtvalidate",
		Short:         "Validate JSON payloads against media type schemas",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := platform.ConfigureLogger(opts.LogLevel, opts.LogFormat, cmd.ErrOrStderr())
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Emit JSON output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")
	cmd.PersistentFlags().StringVar(&opts.SchemaDir, "schemas", opts.SchemaDir, "Directory of JSON/YAML schemas declaring x-media-type")
	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", opts.Mode, "Validation mode (lenient, strict)")
	cmd.PersistentFlags().StringVar(&opts.JournalPath, "journal", opts.JournalPath, "SQLite journal of invalid payloads")
	cmd.PersistentFlags().BoolVar(&opts.FastJournal, "journal-fast", opts.FastJournal, "Use WAL mode for the journal database")

	cmd.AddCommand(
		newValidateCmd(opts),
		newSchemaCmd(opts),
		newJournalCmd(opts),
	)

	return cmd
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBoolDefault(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
