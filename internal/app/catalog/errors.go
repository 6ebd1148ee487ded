package catalog

import (
	"errors"

	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
)

var ErrSchemaPathRequired = errors.New("schema path is required")
var ErrSchemaDirRequired = errors.New("schema directory is required")

// ErrSchemaInvalidJSON is shared with the schema compiler so one sentinel
// matches malformed documents however they are loaded.
var ErrSchemaInvalidJSON = schema.ErrSchemaInvalidJSON
