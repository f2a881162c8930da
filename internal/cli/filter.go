package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-synthfilter/dsp/filter/quad"
)

// Slug folds a display name into a flag-friendly key: lower case with
// spaces removed, so "LP 24 dB" becomes "lp24db".
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// ParseFilter resolves "type[:subtype][:ext]" where type is a slugged
// type name and subtype an index. "off" selects no filter.
func ParseFilter(arg string) (quad.Type, quad.Subtype, error) {
	parts := strings.Split(strings.TrimSpace(arg), ":")
	key := Slug(parts[0])

	typ := quad.Type(-1)

	for _, t := range quad.Types() {
		if Slug(t.String()) == key {
			typ = t
			break
		}
	}

	if typ < 0 {
		return quad.TypeNone, 0, fmt.Errorf("unknown filter type %q", parts[0])
	}

	var sub quad.Subtype

	if len(parts) > 1 && parts[1] != "" {
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return quad.TypeNone, 0, fmt.Errorf("filter %q: subtype: %w", arg, err)
		}

		sub = quad.Subtype(v)
	}

	if len(parts) > 2 {
		if parts[2] != "ext" || len(parts) > 3 {
			return quad.TypeNone, 0, fmt.Errorf("filter %q: unexpected suffix", arg)
		}

		sub |= quad.SubtypeExtended
	}

	if !typ.HasSubtype(sub) {
		return quad.TypeNone, 0, fmt.Errorf("filter %q: %v has no subtype %#x", arg, typ, int(sub))
	}

	return typ, sub, nil
}
