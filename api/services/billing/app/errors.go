package app

import "errors"

// Typed errors for the billing app layer. These enable HTTP mapping without
// relying on SDK-specific error types at the transport layer.
var (

	// ErrInvalidPlan indicates a price id that is not in the catalog.
	ErrInvalidPlan = errors.New("invalid price id")
	// ErrMissingParameter indicates a required input is absent.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrValidation indicates a plan update input failed validation.
	ErrValidation = errors.New("validation error")
	// ErrSessionNotFound indicates the provider does not know the session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionNotComplete indicates the session has not been paid yet.
	ErrSessionNotComplete = errors.New("session not complete")
	// ErrBadEvent indicates the incoming event payload is invalid or missing required fields.
	ErrBadEvent = errors.New("bad event")
	// ErrMissingUserReference indicates a completed session carries no user id.
	ErrMissingUserReference = errors.New("missing user reference")
	// ErrUnresolvedTier indicates no plan tier could be derived for a session.
	ErrUnresolvedTier = errors.New("unresolved plan tier")
	// ErrGateway indicates a failure from the Stripe gateway / API calls.
	ErrGateway = errors.New("gateway error")
	// ErrUpstream indicates the profile backend rejected the plan update.
	ErrUpstream = errors.New("upstream update error")
)
