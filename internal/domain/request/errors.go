package request

import "errors"

var (
	ErrRequestNotFound        = errors.New("request not found")
	ErrRequestAlreadyApproved = errors.New("request is already approved")
	ErrRequestAlreadyRejected = errors.New("request is already rejected")
)
