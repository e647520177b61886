package turso

import "encoding/json"

// UnwrapEnvelope extracts the value under key from a JSON object body. The
// platform wraps most payloads in a named field ({"database": {...}},
// {"databases": [...]}); this peels the wrapper off without caring what is
// inside.
//
// A missing key is not a failure: the body is returned unchanged, which
// also makes callers tolerant of endpoints that answer with the bare
// payload instead of an envelope. Non-object bodies pass through untouched.
func UnwrapEnvelope(body []byte, key string) []byte {
	if key == "" {
		return body
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return body
	}

	if value, ok := envelope[key]; ok {
		return value
	}

	return body
}
