package user

import "errors"

var (
	ErrInvalidToken        = errors.New("invalid or missing access token")
	ErrStaffAccessRequired = errors.New("admin or HR role required")
)
