// Package providers defines the capability interface for the external
// text-generation collaborator and its concrete implementations. The rest
// of the service depends only on the Provider interface, so any backend
// (or a deterministic test double) can be substituted.
package providers

import "github.com/brenonun3s/project-llm-optimizer/utils"

// Provider translates between the service's view of a generation call
// (system instruction + user content, JSON output demanded) and a
// vendor-specific wire format.
type Provider interface {
	// Name returns the provider's identifier string.
	Name() string

	// Endpoint returns the full URL generation requests are POSTed to.
	Endpoint() string

	// Headers returns the HTTP headers required by the vendor API,
	// including authentication.
	Headers() map[string]string

	// PrepareRequest builds the vendor request body carrying the fixed
	// system instruction and the user prompt as the sole content.
	PrepareRequest(systemInstruction, prompt string) ([]byte, error)

	// ParseResponse extracts the generated text payload from a vendor
	// response body.
	ParseResponse(body []byte) (string, error)

	// SupportsJSONOutput reports whether the vendor can be instructed to
	// constrain its output to JSON at the API level.
	SupportsJSONOutput() bool

	SetLogger(logger utils.Logger)
}
