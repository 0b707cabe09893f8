package models

import "encoding/json"

// GenerateTransactionParams is the params object of generateTransaction.
// Authorization values and program sources are passed through untouched.
type GenerateTransactionParams struct {
	Authorization    interface{}     `json:"authorization"`
	Program          json.RawMessage `json:"program"`
	FeeAuthorization interface{}     `json:"fee_authorization"`
	Function         string          `json:"function"`
	Broadcast        bool            `json:"broadcast"`
	Imports          Imports         `json:"imports"`
}

// GetGeneratedTransactionParams is the params object of getGeneratedTransaction.
type GetGeneratedTransactionParams struct {
	RequestID string `json:"request_id"`
}
