package backend

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// errorMessage extracts the descriptive error from a failed response. The
// API answers either {"error": "..."}, {"detail": "..."} or a field error
// map such as {"username": ["already exists"]}; the map is flattened into
// "field: message; ..." with keys in sorted order. Unparseable bodies yield "".
func errorMessage(body []byte) string {
	fields, err := decodeObject(body)
	if err != nil {
		return ""
	}

	for _, key := range []string{"error", "detail", "message"} {
		if raw, ok := fields[key]; ok {
			if msg := flatten(raw); msg != "" {
				return msg
			}
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		msg := flatten(fields[k])
		if msg == "" {
			continue
		}
		if k == "non_field_errors" {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, k+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// errNotObject marks a response body that was not a JSON object.
var errNotObject = errors.New("not a json object")

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errNotObject
	}
	return fields, nil
}

// flatten renders a string or a list of strings as one line.
func flatten(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.TrimSpace(strings.Join(list, " "))
	}
	return ""
}
