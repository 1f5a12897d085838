package domain

import "errors"

var (
	ErrOrgNotFound        = errors.New("organization not found")
	ErrMembershipNotFound = errors.New("organization membership not found")
)
