package hash

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/osvaldoandrade/mtvalidate/internal/infra/canonicaljson"
)

type SHA256 struct{}

func (SHA256) SumHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SumJSONHex digests the canonical form of document, so two schemas that
// differ only in key order or whitespace share a fingerprint.
func (h SHA256) SumJSONHex(ctx context.Context, document []byte) (string, error) {
	canonical, err := canonicaljson.Canonicalizer{}.Canonicalize(ctx, document)
	if err != nil {
		return "", err
	}
	return h.SumHex(canonical), nil
}
