package bits

import (
	"encoding/json"
	"regexp"

	"github.com/bitweave/bitweave/types"
)

// MarshalJSON implements json.Marshaler by rendering the array in the
// compact form "x_x__", with 'x' for set bits and '_' for unset bits.
func (b *BitArray) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	return json.Marshal(b.String())
}

var bitArrayJSONRegexp = regexp.MustCompile(`^"([_x]*)"$`)

// UnmarshalJSON implements json.Unmarshaler by parsing the form
// produced by MarshalJSON. JSON null yields the empty array.
func (b *BitArray) UnmarshalJSON(bz []byte) error {
	if string(bz) == "null" {
		*b = BitArray{}
		return nil
	}
	match := bitArrayJSONRegexp.FindStringSubmatch(string(bz))
	if match == nil {
		return types.Invalidf("bit array in JSON must be of the form %q, got %s", bitArrayJSONRegexp.String(), bz)
	}
	repr := match[1]
	decoded := NewFromFn(len(repr), func(i int) bool { return repr[i] == 'x' })
	*b = *decoded
	return nil
}
