package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// Header names carrying the tenant credential triple on every request.
const (
	HeaderDomain = "X-Gorgias-Domain"
	HeaderEmail  = "X-Gorgias-Email"
	HeaderAPIKey = "X-Gorgias-API-Key"
)

// Credentials identifies one Gorgias tenant. The triple is supplied by the
// caller on every request; this process never mints or refreshes it.
type Credentials struct {
	Domain string
	Email  string
	APIKey string
}

// CredentialsError reports which credential headers were absent from a
// request. MissingHeaders preserves the fixed domain, email, apiKey order.
type CredentialsError struct {
	MissingHeaders []string
}

// Error implements the error interface for CredentialsError.
func (e *CredentialsError) Error() string {
	return fmt.Sprintf("missing required headers: %s", strings.Join(e.MissingHeaders, ", "))
}

// RequiredHeaders returns the three credential header names in the order they
// are validated and documented.
func RequiredHeaders() []string {
	return []string{HeaderDomain, HeaderEmail, HeaderAPIKey}
}

// ExtractCredentials pulls the credential triple out of request headers.
// Absent headers leave the corresponding field empty; no validation happens
// here.
func ExtractCredentials(h http.Header) Credentials {
	return Credentials{
		Domain: strings.TrimSpace(h.Get(HeaderDomain)),
		Email:  strings.TrimSpace(h.Get(HeaderEmail)),
		APIKey: strings.TrimSpace(h.Get(HeaderAPIKey)),
	}
}

// Validate checks that every member of the triple is present. On failure it
// returns a *CredentialsError naming each missing header, in the fixed
// domain, email, apiKey order. Partial credential sets are never usable.
func (c Credentials) Validate() error {
	var missing []string
	if c.Domain == "" {
		missing = append(missing, HeaderDomain)
	}
	if c.Email == "" {
		missing = append(missing, HeaderEmail)
	}
	if c.APIKey == "" {
		missing = append(missing, HeaderAPIKey)
	}
	if len(missing) > 0 {
		return &CredentialsError{MissingHeaders: missing}
	}
	return nil
}
