package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNilAPIClient     = errors.New("api client is nil")
)
