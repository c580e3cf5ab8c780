package services

import "errors"

// Error kinds produced below the pipeline boundary. The search pipeline
// collapses all of them into one generic retry-later failure before anything
// reaches the client; column extension surfaces them per call.
var (
	// ErrProviderUnavailable marks a network or HTTP failure from an
	// external provider.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrSampling marks malformed or out-of-range indices from the
	// index-sampling completion.
	ErrSampling = errors.New("sampling returned invalid indices")

	// ErrParse marks a completion that did not split into the expected
	// field count.
	ErrParse = errors.New("unexpected completion shape")

	// ErrDetailsUnavailable marks a place-details lookup that the provider
	// refused.
	ErrDetailsUnavailable = errors.New("place details unavailable")

	// ErrBusy rejects a search started while another one is outstanding
	// for the same session.
	ErrBusy = errors.New("a search is already running for this session")
)
