package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidPassword
	ErrValidation
	ErrForbidden
	ErrNotConfigured
	ErrUpstream
	ErrUpstreamUnreachable
	ErrPaymentMismatch
	ErrOrderAlreadyPaid
	ErrProductUnavailable
	ErrOrderCancelled
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrInvalidPassword:     "password invalid",
	ErrValidation:          "validation failed",
	ErrForbidden:           "forbidden",
	ErrNotConfigured:       "service not configured",
	ErrUpstream:            "upstream service rejected the request",
	ErrUpstreamUnreachable: "upstream service is unreachable",
	ErrPaymentMismatch:     "payment id does not match order",
	ErrOrderAlreadyPaid:    "order already paid",
	ErrProductUnavailable:  "product unavailable",
	ErrOrderCancelled:      "order cancelled",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrInvalidPassword:     http.StatusUnauthorized,
	ErrValidation:          http.StatusUnprocessableEntity,
	ErrForbidden:           http.StatusForbidden,
	ErrNotConfigured:       http.StatusServiceUnavailable,
	ErrUpstream:            http.StatusBadGateway,
	ErrUpstreamUnreachable: http.StatusBadGateway,
	ErrPaymentMismatch:     http.StatusConflict,
	ErrOrderAlreadyPaid:    http.StatusConflict,
	ErrProductUnavailable:  http.StatusUnprocessableEntity,
	ErrOrderCancelled:      http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrInvalidPassword:     "0006",
	ErrValidation:          "0007",
	ErrForbidden:           "0008",
	ErrNotConfigured:       "0009",
	ErrUpstream:            "0010",
	ErrUpstreamUnreachable: "0011",
	ErrPaymentMismatch:     "0012",
	ErrOrderAlreadyPaid:    "0013",
	ErrProductUnavailable:  "0014",
	ErrOrderCancelled:      "0015",
}
