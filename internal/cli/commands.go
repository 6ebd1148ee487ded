package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/spf13/cobra"

	auditapp "github.com/osvaldoandrade/mtvalidate/internal/app/audit"
	catalogapp "github.com/osvaldoandrade/mtvalidate/internal/app/catalog"
	"github.com/osvaldoandrade/mtvalidate/internal/app/policy"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/filesystem"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/ident"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/jsonpatch"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/sqlitejournal"
	"github.com/osvaldoandrade/mtvalidate/internal/platform"
)

var ErrPayloadInvalidJSON = errors.New("payload is not valid JSON")
var ErrSchemaSourceRequired = errors.New("no schemas configured (use --schemas or --schema)")
var ErrJournalRequired = errors.New("journal path is required (use --journal)")

func newValidateCmd(opts *RootOptions) *cobra.Command {
	var payload string
	var payloadFile string
	var patch string
	var patchFile string
	var schemaPath string
	cmd := &cobra.Command{
		Use:   "validate <media-type>",
		Short: "Validate a JSON payload against a media type schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseValidationMode(opts.Mode)
			if err != nil {
				return err
			}

			registry, err := loadRegistry(cmd, opts, args[0], schemaPath)
			if err != nil {
				return err
			}
			mediaType, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}

			data, err := filesystem.ReadInput("payload", payload, payloadFile)
			if err != nil {
				return err
			}
			if strings.TrimSpace(patch) != "" || strings.TrimSpace(patchFile) != "" {
				ops, err := filesystem.ReadInput("patch", patch, patchFile)
				if err != nil {
					return err
				}
				data, err = (jsonpatch.Patcher{}).Apply(cmd.Context(), data, ops)
				if err != nil {
					return err
				}
			}

			var body any
			if err := jsonv2.Unmarshal(data, &body); err != nil {
				return fmt.Errorf("%w: %v", ErrPayloadInvalidJSON, err)
			}

			var journal *auditapp.Service
			if strings.TrimSpace(opts.JournalPath) != "" {
				store, err := sqlitejournal.OpenWithOptions(opts.JournalPath, sqlitejournal.OpenOptions{Fast: opts.FastJournal})
				if err != nil {
					return err
				}
				defer func() {
					_ = store.Close()
				}()
				journal = auditapp.NewService(store, canonicaljson.Canonicalizer{}, ident.NewULIDGenerator(), platform.RealClock{})
			}

			result := validateResult{MediaType: domain.MediaTypeName(mediaType), Mode: mode, Outcome: domain.OutcomeValid}
			if !domain.IsJSONSuffix(mediaType.Suffix()) {
				result.Outcome = domain.OutcomeSkipped
			}
			handler := func(mt domain.MediaType, schemaErr *domain.SchemaError, body any, helpers policy.Helpers) (any, error) {
				result.Outcome = domain.OutcomeInvalid
				result.Description = schemaErr.Description
				if journal != nil {
					report, err := journal.Record(helpers.Context(), schemaErr, helpers.Normalized())
					if err != nil {
						helpers.Logger().ErrorContext(helpers.Context(), "record validation failure", slog.String("error", err.Error()))
					} else {
						result.ReportID = report.ID
					}
				}
				helpers.WarnDefault()
				return body, nil
			}

			service := policy.NewService(
				policy.NewConfigStore(policy.Config{RaiseOnInvalid: mode.RaiseOnInvalid(), InvalidHandler: handler}),
				canonicaljson.Normalizer{},
				canonicaljson.Canonicalizer{},
				platform.NewWriterWarner(cmd.ErrOrStderr()),
				nil,
				slog.Default(),
			)
			if _, err := service.Validate(cmd.Context(), body, mediaType); err != nil {
				return err
			}
			return writeValidateResult(cmd, result, opts.JSONOutput)
		},
	}

	cmd.Flags().StringVar(&payload, "payload", "", "Inline JSON payload")
	cmd.Flags().StringVar(&payloadFile, "file", "", "Path to JSON payload")
	cmd.Flags().StringVar(&patch, "patch", "", "Inline JSON Patch (array) or merge patch (object) applied before validation")
	cmd.Flags().StringVar(&patchFile, "patch-file", "", "Path to a JSON Patch or merge patch")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Schema file for the media type (overrides --schemas lookup)")
	return cmd
}

func newSchemaCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect media type schemas",
		RunE:  runHelp,
	}
	cmd.AddCommand(newSchemaCheckCmd(opts), newSchemaListCmd(opts))
	return cmd
}

func newSchemaCheckCmd(opts *RootOptions) *cobra.Command {
	var identifier string
	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Compile a JSON or YAML schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := catalogapp.NewService(schema.NewRegistry(), filesystem.SchemaSource{}, schema.JSONSchemaValidator{}, slog.Default())
			mediaType, err := service.Compile(cmd.Context(), identifier, args[0])
			if errors.Is(err, schema.ErrMediaTypeMissing) && strings.TrimSpace(identifier) == "" {
				if err := service.Verify(cmd.Context(), args[0]); err != nil {
					return err
				}
				return writeSchemaVerified(cmd, args[0], opts.JSONOutput)
			}
			if err != nil {
				return err
			}
			return writeSchemaList(cmd, []*schema.MediaType{mediaType}, opts.JSONOutput)
		},
	}
	cmd.Flags().StringVar(&identifier, "media-type", "", "Media type identifier (defaults to the schema's x-media-type)")
	return cmd
}

func newSchemaListCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List media types found in the schema directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := loadRegistry(cmd, opts, "", "")
			if err != nil {
				return err
			}
			return writeSchemaList(cmd, registry.List(), opts.JSONOutput)
		},
	}
}

func newJournalCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect recorded validation failures",
		RunE:  runHelp,
	}
	cmd.AddCommand(newJournalListCmd(opts))
	return cmd
}

func newJournalListCmd(opts *RootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded validation failures, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.JournalPath) == "" {
				return ErrJournalRequired
			}
			store, err := sqlitejournal.OpenWithOptions(opts.JournalPath, sqlitejournal.OpenOptions{Fast: opts.FastJournal})
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			service := auditapp.NewService(store, canonicaljson.Canonicalizer{}, ident.NewULIDGenerator(), platform.RealClock{})
			reports, err := service.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeReports(cmd, reports, opts.JSONOutput)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of reports")
	return cmd
}

func loadRegistry(cmd *cobra.Command, opts *RootOptions, identifier, schemaPath string) (*schema.Registry, error) {
	registry := schema.NewRegistry()
	service := catalogapp.NewService(registry, filesystem.SchemaSource{}, schema.JSONSchemaValidator{}, slog.Default())

	dir := strings.TrimSpace(opts.SchemaDir)
	schemaPath = strings.TrimSpace(schemaPath)
	if dir == "" && schemaPath == "" {
		return nil, ErrSchemaSourceRequired
	}
	if schemaPath != "" {
		if _, err := service.Apply(cmd.Context(), identifier, schemaPath); err != nil {
			return nil, err
		}
		return registry, nil
	}
	if _, err := service.Load(cmd.Context(), dir); err != nil {
		return nil, err
	}
	return registry, nil
}

type validateResult struct {
	ReportID    string
	MediaType   string
	Mode        domain.ValidationMode
	Outcome     domain.Outcome
	Description string
}

type validateOutput struct {
	ReportID    string `json:"report_id,omitempty"`
	MediaType   string `json:"media_type"`
	Mode        string `json:"mode"`
	Outcome     string `json:"outcome"`
	Description string `json:"description,omitempty"`
}

type schemaOutput struct {
	MediaType   string `json:"media_type"`
	Suffix      string `json:"suffix,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

type schemaVerifiedOutput struct {
	Schema    string `json:"schema"`
	Compiles  bool   `json:"compiles"`
	MediaType string `json:"media_type"`
}

type schemaListOutput struct {
	MediaTypes []schemaOutput `json:"media_types"`
}

type reportOutput struct {
	ID          string          `json:"id"`
	MediaType   string          `json:"media_type"`
	Outcome     string          `json:"outcome"`
	Description string          `json:"description,omitempty"`
	Body        json.RawMessage `json:"body,omitempty"`
	RecordedAt  string          `json:"recorded_at"`
}

type reportListOutput struct {
	Reports []reportOutput `json:"reports"`
}

func writeValidateResult(cmd *cobra.Command, result validateResult, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		payload := validateOutput{
			ReportID:    result.ReportID,
			MediaType:   result.MediaType,
			Mode:        string(result.Mode),
			Outcome:     result.Outcome.String(),
			Description: result.Description,
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(out, asJSON)
	if err := ui.kv(out, "Media Type", result.MediaType); err != nil {
		return err
	}
	if err := ui.kv(out, "Mode", string(result.Mode)); err != nil {
		return err
	}
	if err := ui.kv(out, "Outcome", ui.outcome(result.Outcome)); err != nil {
		return err
	}
	if result.ReportID != "" {
		if err := ui.kv(out, "Report", result.ReportID); err != nil {
			return err
		}
	}
	return nil
}

func writeSchemaList(cmd *cobra.Command, mediaTypes []*schema.MediaType, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		payload := schemaListOutput{MediaTypes: make([]schemaOutput, 0, len(mediaTypes))}
		for _, mediaType := range mediaTypes {
			payload.MediaTypes = append(payload.MediaTypes, schemaOutput{
				MediaType:   mediaType.String(),
				Suffix:      mediaType.Suffix(),
				Fingerprint: mediaType.Fingerprint(),
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(out, asJSON)
	for _, mediaType := range mediaTypes {
		if _, err := fmt.Fprintf(out, "%s %s\n", ui.key(mediaType.String()), ui.fingerprint(mediaType.Fingerprint())); err != nil {
			return err
		}
	}
	return nil
}

func writeSchemaVerified(cmd *cobra.Command, path string, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(schemaVerifiedOutput{Schema: path, Compiles: true})
	}

	ui := newRenderer(out, asJSON)
	_, err := fmt.Fprintf(out, "%s %s\n", ui.key(path), ui.dim("compiles, no "+schema.MediaTypeKeyword+" declared"))
	return err
}

func writeReports(cmd *cobra.Command, reports []domain.Report, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		payload := reportListOutput{Reports: make([]reportOutput, 0, len(reports))}
		for _, report := range reports {
			payload.Reports = append(payload.Reports, reportOutput{
				ID:          report.ID,
				MediaType:   report.MediaType,
				Outcome:     report.Outcome.String(),
				Description: report.Description,
				Body:        rawJSON(report.Body),
				RecordedAt:  report.RecordedAt.Format(time.RFC3339Nano),
			})
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(out, asJSON)
	for _, report := range reports {
		if _, err := fmt.Fprintf(out, "%s %s %s %s\n",
			ui.accent(report.ID),
			report.RecordedAt.Format(time.RFC3339),
			ui.outcome(report.Outcome),
			report.MediaType,
		); err != nil {
			return err
		}
		if report.Description != "" {
			if _, err := fmt.Fprintf(out, "%s\n", ui.description(report.Description)); err != nil {
				return err
			}
		}
	}
	return nil
}

func rawJSON(data []byte) json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	return json.RawMessage(data)
}

func runHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
