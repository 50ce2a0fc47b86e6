package diff

import (
	"encoding/json/jsontext"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/attr-format/attr"
	"github.com/attr-format/attr/decode"
	"github.com/attr-format/attr/encode"
)

// Patch applies an RFC 6902 JSON patch document to a record via a JSON
// round-trip: the record is encoded, patched, and re-decoded with
// inferred typing. The input record is not modified.
func Patch(rec attr.Record, patchDoc []byte) (attr.Record, error) {
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := encode.JSON(rec)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	res, err := decode.Infer(jsontext.Value(out))
	if err != nil {
		return nil, fmt.Errorf("decoding patched record: %w", err)
	}
	return res, nil
}
