package auth

import (
	"errors"
	"fmt"
)

// Required payload keys.
const (
	KeyAuthorization    = "authorization"
	KeyFeeAuthorization = "fee_authorization"
)

// ErrMissingKey is returned when a required payload key is absent.
var ErrMissingKey = errors.New("authorization payload missing key")

// Payload is the normalized authorization object. Values are opaque.
type Payload map[string]interface{}

// Authorization returns the transaction authorization value.
func (p Payload) Authorization() (interface{}, error) {
	return p.get(KeyAuthorization)
}

// FeeAuthorization returns the fee authorization value.
func (p Payload) FeeAuthorization() (interface{}, error) {
	return p.get(KeyFeeAuthorization)
}

func (p Payload) get(key string) (interface{}, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}

	return v, nil
}
