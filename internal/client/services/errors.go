package services

import "errors"

var (
	ErrUnknownResume = errors.New("unknown resume")
	ErrPending       = errors.New("previous change still in flight")
	ErrNoUser        = errors.New("no user selected")
)
