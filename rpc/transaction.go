package rpc

import "aleo-broadcaster/models"

// GenerateTransaction submits a generateTransaction call and returns the raw response.
func (c *Client) GenerateTransaction(params models.GenerateTransactionParams) (string, error) {
	return c.call(models.MethodGenerateTransaction, params)
}

// GetGeneratedTransaction fetches a generated transaction by request id and returns the raw response.
func (c *Client) GetGeneratedTransaction(requestID string) (string, error) {
	return c.call(models.MethodGetGeneratedTransaction, models.GetGeneratedTransactionParams{
		RequestID: requestID,
	})
}
