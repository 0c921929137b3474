package sensor

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrMalformed marks datagrams that are not a JSON object
var ErrMalformed = errors.New("malformed sensor datagram")

// Decode parses a DIPPID datagram: {"<capability>": number | {"<axis>": number}}
// Members that are neither are skipped; an object with no numeric members is skipped
func Decode(data []byte) (map[string]Reading, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	out := make(map[string]Reading, len(raw))
	for name, msg := range raw {
		var scalar float64
		if err := json.Unmarshal(msg, &scalar); err == nil {
			out[name] = Reading{ScalarKey: scalar}
			continue
		}

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(msg, &obj); err != nil {
			continue
		}
		r := make(Reading, len(obj))
		for axis, v := range obj {
			var f float64
			if err := json.Unmarshal(v, &f); err == nil {
				r[axis] = f
			}
		}
		if len(r) > 0 {
			out[name] = r
		}
	}
	return out, nil
}

// Encode renders readings as a DIPPID datagram, ScalarKey-only readings become bare numbers
func Encode(readings map[string]Reading) ([]byte, error) {
	payload := make(map[string]any, len(readings))
	for name, r := range readings {
		if v, ok := r[ScalarKey]; ok && len(r) == 1 {
			payload[name] = v
			continue
		}
		payload[name] = map[string]float64(r)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode sensor datagram")
	}
	return data, nil
}
