package utils

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTripNotFound           = errors.New("trip not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrPoorQualityInput       = errors.New("input quality too low to plan from")
	ErrRateLimited            = errors.New("too many generation attempts")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI response")
	ErrDatabaseError          = errors.New("database error")
)
