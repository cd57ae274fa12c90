package calculator

import "time"

// CalcRequest is the JSON body for all binary operations. Operands are
// pointers so that 0 is a legal value while a missing field fails the
// required validation.
type CalcRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

// CalcResponse is the JSON response for a successful operation. Timestamp
// is the UTC instant the response was constructed, serialized as RFC 3339.
type CalcResponse struct {
	Result    float64   `json:"result"`
	Operation string    `json:"operation"`
	Timestamp time.Time `json:"timestamp"`
}
