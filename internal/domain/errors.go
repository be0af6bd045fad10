package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgLocationNotFound  = "location not found"
	ErrMsgCollectorNotFound = "collector not found"
	ErrMsgContainerFull     = "container is full"
	ErrMsgPlacementFailed   = "item could not be placed"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgItemNotFound      = "item not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Missing-entity errors
	ErrLocationNotFound  = errors.New(ErrMsgLocationNotFound)
	ErrCollectorNotFound = errors.New(ErrMsgCollectorNotFound)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)

	// Capacity errors
	ErrContainerFull   = errors.New(ErrMsgContainerFull)
	ErrPlacementFailed = errors.New(ErrMsgPlacementFailed)

	// Configuration and input errors
	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
