package application

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// requireID extracts a required id argument. Ids are positive integers;
// fractional numbers are rejected rather than truncated, so a bad id never
// reaches the upstream.
func requireID(req mcp.CallToolRequest, name string) (int64, error) {
	n, ok := numberArg(req, name)
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", name)
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("parameter %s must be an integer id, got %v", name, n)
	}
	if n <= 0 {
		return 0, fmt.Errorf("parameter %s must be a positive id, got %v", name, n)
	}
	return int64(n), nil
}

// stringArg returns a pointer to the named argument when it was supplied as a
// string, nil when absent. Used to build partial-update payloads where unset
// and empty are different things.
func stringArg(req mcp.CallToolRequest, name string) *string {
	if v, ok := req.GetArguments()[name].(string); ok {
		return &v
	}
	return nil
}

// boolArg returns a pointer to the named argument when it was supplied as a
// boolean, nil when absent.
func boolArg(req mcp.CallToolRequest, name string) *bool {
	if v, ok := req.GetArguments()[name].(bool); ok {
		return &v
	}
	return nil
}

// numberArg reports the named argument as a number. JSON decoding delivers
// numbers as float64; raw ints appear in tests.
func numberArg(req mcp.CallToolRequest, name string) (float64, bool) {
	switch v := req.GetArguments()[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// int64Arg returns a pointer to the named argument as an int64, nil when
// absent.
func int64Arg(req mcp.CallToolRequest, name string) *int64 {
	if v, ok := numberArg(req, name); ok {
		n := int64(v)
		return &n
	}
	return nil
}

// intArg returns a pointer to the named argument as an int, nil when absent.
func intArg(req mcp.CallToolRequest, name string) *int {
	if v, ok := numberArg(req, name); ok {
		n := int(v)
		return &n
	}
	return nil
}

// listOptions reads the shared pagination arguments of list tools.
func listOptions(req mcp.CallToolRequest) domain.ListOptions {
	return domain.ListOptions{
		Limit:   req.GetInt("limit", 0),
		Cursor:  req.GetString("cursor", ""),
		OrderBy: req.GetString("orderBy", ""),
	}
}

// formatArg reads the optional display-format argument, defaulting to JSON.
func formatArg(req mcp.CallToolRequest) domain.Format {
	return domain.Format(req.GetString("format", string(domain.FormatJSON)))
}

// validateEnum rejects values outside a closed set. Empty values pass; the
// upstream treats them as unset.
func validateEnum(name, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("parameter %s must be one of %v, got %q", name, allowed, value)
}

// parseJSONObject parses a caller-supplied JSON text argument that must be an
// object. The parse happens before any network call so malformed input fails
// locally.
func parseJSONObject(name, raw string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parameter %s must be a JSON object: %v", name, err)
	}
	return out, nil
}

// parseJSONObjectArray parses a caller-supplied JSON text argument that must
// be an array of objects.
func parseJSONObjectArray(name, raw string) ([]map[string]any, error) {
	var out []map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parameter %s must be a JSON array of objects: %v", name, err)
	}
	return out, nil
}

// parseJSONStringMap parses a caller-supplied JSON text argument that must be
// an object with string values, e.g. HTTP headers.
func parseJSONStringMap(name, raw string) (map[string]string, error) {
	var out map[string]string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parameter %s must be a JSON object of strings: %v", name, err)
	}
	return out, nil
}

// parseStringArray parses a caller-supplied JSON text argument that must be a
// non-empty array of strings.
func parseStringArray(name, raw string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parameter %s must be a JSON array of strings: %v", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parameter %s must name at least one entry", name)
	}
	return out, nil
}

// parseIDArray parses a caller-supplied JSON text argument that must be an
// array of integer ids.
func parseIDArray(name, raw string) ([]int64, error) {
	var out []int64
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parameter %s must be a JSON array of integer ids: %v", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parameter %s must name at least one id", name)
	}
	return out, nil
}
