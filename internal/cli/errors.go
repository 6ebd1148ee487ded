package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	catalogapp "github.com/osvaldoandrade/mtvalidate/internal/app/catalog"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/filesystem"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/jsonpatch"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "internal"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
)

const (
	ExitInternal = 1
	ExitInvalid  = 2
	ExitNotFound = 3
	ExitConflict = 4
)

type ExitError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e ExitError) Error() string {
	return errorMessage(e)
}

func NormalizeError(err error) ExitError {
	if err == nil {
		return ExitError{Code: 0}
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			exitErr.Code = ExitInternal
		}
		return exitErr
	}

	switch {
	case errors.Is(err, schema.ErrMediaTypeNotFound),
		errors.Is(err, fs.ErrNotExist):
		return ExitError{Code: ExitNotFound, Kind: KindNotFound, Err: err}
	case errors.Is(err, schema.ErrDuplicateMediaType):
		return ExitError{Code: ExitConflict, Kind: KindConflict, Err: err}
	case errors.Is(err, domain.ErrSchemaMismatch),
		errors.Is(err, domain.ErrEscalated),
		errors.Is(err, domain.ErrSerialization),
		errors.Is(err, domain.ErrMediaTypeRequired),
		errors.Is(err, domain.ErrIdentifierRequired),
		errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidValidationMode),
		errors.Is(err, catalogapp.ErrSchemaPathRequired),
		errors.Is(err, catalogapp.ErrSchemaDirRequired),
		errors.Is(err, schema.ErrSchemaInvalidJSON),
		errors.Is(err, schema.ErrMediaTypeMissing),
		errors.Is(err, filesystem.ErrPayloadRequired),
		errors.Is(err, filesystem.ErrPayloadConflict),
		errors.Is(err, jsonpatch.ErrInvalidPatch),
		errors.Is(err, ErrPayloadInvalidJSON),
		errors.Is(err, ErrSchemaSourceRequired),
		errors.Is(err, ErrJournalRequired):
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Err: err}
	default:
		return ExitError{Code: ExitInternal, Kind: KindInternal, Err: err}
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return NormalizeError(err).Code
}

func writeCLIError(w io.Writer, exitErr ExitError, asJSON bool) error {
	if exitErr.Code == 0 {
		return nil
	}
	message := errorMessage(exitErr)
	if asJSON {
		payload := struct {
			Code    int    `json:"code"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{
			Code:    exitErr.Code,
			Kind:    string(exitErr.Kind),
			Message: message,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(w, false)
	prefix := "Error"
	if exitErr.Kind != "" {
		prefix = fmt.Sprintf("Error (%s)", exitErr.Kind)
	}
	prefix = ui.err(prefix)
	_, err := fmt.Fprintf(w, "%s: %s\n", prefix, message)
	return err
}

func errorMessage(exitErr ExitError) string {
	if exitErr.Message != "" {
		return exitErr.Message
	}
	if exitErr.Err != nil {
		return exitErr.Err.Error()
	}
	return "unknown error"
}
