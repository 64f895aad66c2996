// Package docs serves the description of every API endpoint.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Endpoints returns the endpoint descriptions keyed by "METHOD /path"
func Endpoints() (map[string]json.RawMessage, error) {
	var endpoints map[string]json.RawMessage
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		return nil, fmt.Errorf("failed to parse endpoints.json: %w", err)
	}
	return endpoints, nil
}
