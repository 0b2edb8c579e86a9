package client

import "errors"

var (
	ErrNoInput       = errors.New("one of --text, --audio or --image is required")
	ErrTooManyInputs = errors.New("only one of --text, --audio or --image may be set")
)
