package recordstore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// MetaDelimiter separates the display text of a column from its packed
// side-channel fields.
const MetaDelimiter = "||meta:"

// Meta holds fields packed into a text column that has no dedicated
// columns of its own.
type Meta map[string]string

// EncodeMeta renders "<display>||meta:<base64url(json)>". Without any meta the
// display text is returned unchanged.
func EncodeMeta(display string, meta Meta) string {
	clean := make(Meta, len(meta))
	for k, v := range meta {
		if v != "" {
			clean[k] = v
		}
	}
	if len(clean) == 0 {
		return display
	}
	b, err := json.Marshal(clean)
	if err != nil {
		return display
	}
	return display + MetaDelimiter + base64.RawURLEncoding.EncodeToString(b)
}

// DecodeMeta splits a packed column. A value without the delimiter is plain
// display text. On a corrupt suffix the display part is still returned.
func DecodeMeta(s string) (string, Meta, error) {
	display, encoded, found := strings.Cut(s, MetaDelimiter)
	if !found {
		return s, Meta{}, nil
	}

	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return display, Meta{}, fmt.Errorf("decode meta: %w", err)
	}
	meta := Meta{}
	if err := json.Unmarshal(b, &meta); err != nil {
		return display, Meta{}, fmt.Errorf("decode meta: %w", err)
	}
	return display, meta, nil
}

// Merge overlays changes on a copy of m. An empty value removes the key.
func (m Meta) Merge(changes Meta) Meta {
	out := make(Meta, len(m)+len(changes))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range changes {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}
