package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidInput        = errors.New("invalid input")
	ErrArchetypeNotFound   = errors.New("archetype not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUnknownSport        = errors.New("unknown sport")
	ErrSportNotSelected    = errors.New("no sport selected")
	ErrInternal            = errors.New("internal error")
)
