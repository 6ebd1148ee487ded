package jsonpatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/evanphx/json-patch/v5"
)

var ErrInvalidPatch = errors.New("invalid patch")

// Patcher applies a patch to a JSON payload before it is validated. A JSON
// array is treated as an RFC 6902 operation list, a JSON object as an
// RFC 7386 merge patch.
type Patcher struct{}

func (Patcher) Apply(ctx context.Context, doc, patch []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	patch = bytes.TrimSpace(patch)
	if len(patch) > 0 && patch[0] == '{' {
		out, err := jsonpatch.MergePatch(doc, patch)
		if err != nil {
			return nil, fmt.Errorf("%w: merge: %v", ErrInvalidPatch, err)
		}
		return out, nil
	}

	decoded, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidPatch, err)
	}

	out, err := decoded.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: apply: %v", ErrInvalidPatch, err)
	}
	return out, nil
}
