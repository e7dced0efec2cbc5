package service

import "errors"

// ErrInvalidRequest marks errors caused by bad client input so handlers can
// answer with a 400 instead of a 500.
var ErrInvalidRequest = errors.New("invalid request")
