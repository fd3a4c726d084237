package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrMalformedSARIF    = goerr.New("malformed SARIF document")
	ErrInvalidArtifact   = goerr.New("invalid artifact response")
	ErrInvalidTransition = goerr.New("invalid scan status transition")

	// ErrNoProvider is a configuration error: no completion provider is
	// configured or the requested provider name is unknown. It is fatal to
	// the request, not to the process.
	ErrNoProvider = goerr.New("no completion provider available")

	// ErrModelCall is a transport error from the underlying completion call.
	// It must be caught at the prioritizer/patch-generator boundary and
	// converted to a degraded result, never propagated raw to HTTP.
	ErrModelCall = goerr.New("completion call failed")
)
