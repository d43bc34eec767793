package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid server address")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("model config is invalid")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
