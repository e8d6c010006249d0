package services

import "errors"

// Domain errors returned by the service layer. Handlers map these to HTTP
// status codes centrally.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrStatusTerminal  = errors.New("order status transition not allowed")
	ErrContactNotFound = errors.New("contact message not found")
	ErrProductNotFound = errors.New("product not found")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
