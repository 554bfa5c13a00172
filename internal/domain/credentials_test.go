package domain

import (
	"errors"
	"net/http"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCredentials(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderDomain, "  acme ")
	h.Set(HeaderEmail, "agent@acme.com")

	creds := ExtractCredentials(h)

	assert.Equal(t, "acme", creds.Domain, "surrounding whitespace is trimmed")
	assert.Equal(t, "agent@acme.com", creds.Email)
	assert.Empty(t, creds.APIKey, "absent header leaves the field empty")
}

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		missing []string
	}{
		{
			name:  "all present",
			creds: Credentials{Domain: "acme", Email: "a@acme.com", APIKey: "key"},
		},
		{
			name:    "missing api key",
			creds:   Credentials{Domain: "acme", Email: "a@acme.com"},
			missing: []string{HeaderAPIKey},
		},
		{
			name:    "missing domain and email",
			creds:   Credentials{APIKey: "key"},
			missing: []string{HeaderDomain, HeaderEmail},
		},
		{
			name:    "all missing",
			creds:   Credentials{},
			missing: []string{HeaderDomain, HeaderEmail, HeaderAPIKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}
			var credErr *CredentialsError
			require.ErrorAs(t, err, &credErr)
			assert.Equal(t, tt.missing, credErr.MissingHeaders)
		})
	}
}

// Any subset of absent fields must be enumerated exactly, always in the
// domain, email, apiKey order, regardless of which fields are present.
func TestCredentialsValidateEnumeration(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("missing headers enumerated in fixed order", prop.ForAll(
		func(hasDomain, hasEmail, hasKey bool) bool {
			creds := Credentials{}
			var want []string
			if hasDomain {
				creds.Domain = "acme"
			} else {
				want = append(want, HeaderDomain)
			}
			if hasEmail {
				creds.Email = "a@acme.com"
			} else {
				want = append(want, HeaderEmail)
			}
			if hasKey {
				creds.APIKey = "key"
			} else {
				want = append(want, HeaderAPIKey)
			}

			err := creds.Validate()
			if len(want) == 0 {
				return err == nil
			}
			var credErr *CredentialsError
			if !errors.As(err, &credErr) {
				return false
			}
			if len(credErr.MissingHeaders) != len(want) {
				return false
			}
			for i := range want {
				if credErr.MissingHeaders[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.TestingRun(t)
}
