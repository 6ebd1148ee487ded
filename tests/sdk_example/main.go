package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/osvaldoandrade/mtvalidate/pkg/validation"
)

func main() {
	dir := os.Getenv("MTVALIDATE_SCHEMAS")
	if dir == "" {
		fmt.Fprintln(os.Stderr, "MTVALIDATE_SCHEMAS is required (directory of media type schemas)")
		os.Exit(1)
	}

	ctx := context.Background()
	registry, err := validation.LoadRegistry(ctx, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load schemas: %v\n", err)
		os.Exit(1)
	}

	mediaType, err := registry.Lookup("application/vnd.query+json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}

	body := map[string]any{"query": map[string]any{"question": "Will it rain?"}}

	// Lenient: prints a warning and hands the body back.
	if _, err := validation.Validate(ctx, body, mediaType); err != nil {
		fmt.Fprintf(os.Stderr, "validate: %v\n", err)
	}

	validation.Configure(func(cfg *validation.Config) {
		cfg.RaiseOnInvalid = true
	})
	defer validation.Reset()

	_, err = validation.Validate(ctx, body, mediaType)
	var schemaErr *validation.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Printf("strict mode rejected %s: %s\n", schemaErr.MediaType, schemaErr.Description)
	}

	if path := os.Getenv("MTVALIDATE_JOURNAL"); path != "" {
		journal, err := validation.OpenJournal(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open journal: %v\n", err)
			return
		}
		defer journal.Close()

		validator, err := validation.New(
			validation.WithConfig(validation.Config{InvalidHandler: journal.Handler()}),
			validation.WithMode(os.Getenv("MTVALIDATE_MODE")),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "new validator: %v\n", err)
			return
		}
		if _, err := validator.Validate(ctx, body, mediaType); err != nil {
			fmt.Fprintf(os.Stderr, "validate: %v\n", err)
		}

		reports, err := journal.List(ctx, 5)
		if err != nil {
			fmt.Fprintf(os.Stderr, "journal list: %v\n", err)
			return
		}
		for _, report := range reports {
			fmt.Printf("report id=%s media_type=%s outcome=%s\n", report.ID, report.MediaType, report.Outcome)
		}
	}
}
