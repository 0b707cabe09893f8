package models

// JSONRPCVersion is the protocol version sent in every request.
const JSONRPCVersion = "2.0"

// JSON-RPC methods of the transaction generation service.
const (
	MethodGenerateTransaction     = "generateTransaction"
	MethodGetGeneratedTransaction = "getGeneratedTransaction"
)

// Request is the JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int         `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

// NewRequest returns a request envelope with id 1.
func NewRequest(method string, params interface{}) Request {
	return Request{
		JSONRPC: JSONRPCVersion,
		ID:      1,
		Method:  method,
		Params:  params,
	}
}
