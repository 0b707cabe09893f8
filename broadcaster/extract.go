package broadcaster

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrResultExtraction is returned when no request id can be read from a
// generateTransaction response.
var ErrResultExtraction = errors.New("could not extract request_id")

// errNotReady marks a poll response without a result.
var errNotReady = errors.New("generated transaction not ready")

// decodeObject parses a response body as a JSON object.
func decodeObject(raw string) (map[string]interface{}, error) {
	var body interface{}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, err
	}

	m, ok := body.(map[string]interface{})
	if !ok {
		return nil, errors.New("response is not an object")
	}

	return m, nil
}

// rpcErrorMessage renders the error member, whatever its shape.
func rpcErrorMessage(v interface{}) string {
	if m, ok := v.(map[string]interface{}); ok {
		if msg, ok := m["message"]; ok {
			return fmt.Sprintf("rpc error %v: %v", m["code"], msg)
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return "rpc error " + string(b)
}

// extractRequestID reads the result of a JSON-RPC response. Other envelope
// members are not validated.
func extractRequestID(raw string) (string, error) {
	body, err := decodeObject(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResultExtraction, err)
	}

	result, ok := body["result"]
	if !ok || result == nil {
		if rpcErr, ok := body["error"]; ok && rpcErr != nil {
			return "", fmt.Errorf("%w: %s", ErrResultExtraction, rpcErrorMessage(rpcErr))
		}
		return "", fmt.Errorf("%w: result is missing", ErrResultExtraction)
	}

	// The request id is an opaque string; other result shapes are refused
	// rather than sent back as request_id.
	id, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("%w: result is not a string: %v", ErrResultExtraction, result)
	}

	return id, nil
}

// ready tells if a getGeneratedTransaction response carries a result.
func ready(raw string) bool {
	body, err := decodeObject(raw)
	if err != nil {
		return false
	}

	return body["result"] != nil
}
