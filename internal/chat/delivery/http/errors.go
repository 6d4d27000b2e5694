package http

import "errors"

var errInvalidBody = errors.New("invalid request body: expected JSON object with a \"message\" string")
