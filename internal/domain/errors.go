package domain

import "errors"

var (
	// ErrContentAPIFailure is returned when the content API request cannot be completed
	ErrContentAPIFailure = errors.New("content API request failed")

	// ErrUnexpectedStatus is returned when the content API answers with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected content API status")

	// ErrMalformedPayload is returned when the response body is not the expected JSON shape
	ErrMalformedPayload = errors.New("malformed content API payload")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSuperseded is returned when a newer decoration of the same container
	// started while this one was still fetching
	ErrSuperseded = errors.New("decoration superseded by a newer invocation")
)
