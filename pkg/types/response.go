package types

import "github.com/oumar782/Jessback/pkg/pagination"

// ListEnvelope carries one page of rows plus its pagination metadata.
type ListEnvelope struct {
	Data       any             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// CountEnvelope is the body of the /count endpoints.
type CountEnvelope struct {
	Total int64 `json:"total"`
}

// ErrorEnvelope is the wire format all error responses use.
type ErrorEnvelope struct {
	Error string `json:"error"`
}
