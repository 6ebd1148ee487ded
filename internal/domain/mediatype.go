package domain

import (
	"fmt"
	"mime"
	"strings"

	"golang.org/x/text/cases"
)

const SuffixJSON = "json"

// MediaType is a content format paired with the schema that governs it.
type MediaType interface {
	Suffix() string
	Validate(data any) error
}

var suffixFolder = cases.Fold()

func NormalizeSuffix(suffix string) string {
	return suffixFolder.String(strings.TrimSpace(suffix))
}

func IsJSONSuffix(suffix string) bool {
	return NormalizeSuffix(suffix) == SuffixJSON
}

// MediaTypeName renders a media type for diagnostics.
func MediaTypeName(mediaType MediaType) string {
	if mediaType == nil {
		return ""
	}
	if named, ok := mediaType.(fmt.Stringer); ok {
		return named.String()
	}
	return fmt.Sprintf("%v", mediaType)
}

// Identifier is a parsed media type string such as
// application/vnd.mydomain.query.v2+json.
type Identifier struct {
	Type    string
	Subtype string
	Suffix  string
	Params  map[string]string
}

func ParseIdentifier(value string) (Identifier, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Identifier{}, ErrIdentifierRequired
	}

	base, params, err := mime.ParseMediaType(value)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %s: %v", ErrInvalidIdentifier, value, err)
	}

	mainType, subtype, ok := strings.Cut(base, "/")
	if !ok || mainType == "" || subtype == "" || mainType == "*" || subtype == "*" {
		return Identifier{}, fmt.Errorf("%w: %s", ErrInvalidIdentifier, value)
	}

	id := Identifier{Type: mainType, Subtype: subtype, Params: params}
	if idx := strings.LastIndex(subtype, "+"); idx >= 0 {
		id.Subtype = subtype[:idx]
		id.Suffix = NormalizeSuffix(subtype[idx+1:])
		if id.Subtype == "" || id.Suffix == "" {
			return Identifier{}, fmt.Errorf("%w: %s", ErrInvalidIdentifier, value)
		}
	}
	return id, nil
}

func (id Identifier) String() string {
	if id.Type == "" {
		return ""
	}
	out := id.Type + "/" + id.Subtype
	if id.Suffix != "" {
		out += "+" + id.Suffix
	}
	return out
}

// Key is the lookup key used by registries. Parameters do not take part in
// matching.
func (id Identifier) Key() string {
	return strings.ToLower(id.String())
}
