package stackhost

import (
	"fmt"
	"os"
	"regexp"

	"stackmcp/pkg/logging"

	"github.com/caarlos0/env/v11"
)

// CredentialsFile is the fallback credentials source, read relative to the
// working directory when the environment variables are not set.
const CredentialsFile = "stackhost-keys.txt"

// Credentials is the immutable three-part credential set required for every
// backend call. It is resolved once at process start and never mutated.
type Credentials struct {
	// APIKey is the general API key. Its base64 encoding becomes the
	// bearer token on every request.
	APIKey string `env:"STACKHOST_API_KEY"`
	// OAuthKey is the OAuth client key.
	OAuthKey string `env:"STACKHOST_OAUTH_KEY"`
	// CombinedKey is the combined key ("<general>+<oauth>").
	CombinedKey string `env:"STACKHOST_COMBINED_KEY"`
}

func (c Credentials) complete() bool {
	return c.APIKey != "" && c.OAuthKey != "" && c.CombinedKey != ""
}

// Each token immediately follows its fixed label phrase on the same line.
// Keys are alphanumeric; the combined key additionally allows '+'.
var (
	generalKeyPattern  = regexp.MustCompile(`General API key:\s*([A-Za-z0-9]+)`)
	oauthKeyPattern    = regexp.MustCompile(`OAuth client key:\s*([A-Za-z0-9]+)`)
	combinedKeyPattern = regexp.MustCompile(`Combined key:\s*([A-Za-z0-9+]+)`)
)

// ResolveCredentials resolves the credential set, preferring the three
// environment variables and falling back to the local credentials file.
// Token values are never logged, only the source they were resolved from.
func ResolveCredentials() (Credentials, error) {
	return resolveCredentials(CredentialsFile)
}

func resolveCredentials(fallbackPath string) (Credentials, error) {
	var creds Credentials
	if err := env.Parse(&creds); err != nil {
		return Credentials{}, &CredentialError{Reason: fmt.Sprintf("parsing environment: %v", err)}
	}

	if creds.complete() {
		logging.Debug("Credentials", "Resolved credentials from environment variables")
		return creds, nil
	}

	data, err := os.ReadFile(fallbackPath)
	if err != nil {
		return Credentials{}, &CredentialError{
			Reason: fmt.Sprintf("environment variables incomplete and fallback file %s unreadable: %v", fallbackPath, err),
		}
	}

	creds, err = credentialsFromFile(data, fallbackPath)
	if err != nil {
		return Credentials{}, err
	}

	logging.Debug("Credentials", "Resolved credentials from %s", fallbackPath)
	return creds, nil
}

// credentialsFromFile extracts the three labeled tokens from the fallback
// file contents. Any missing label is a hard failure.
func credentialsFromFile(data []byte, path string) (Credentials, error) {
	extract := func(pattern *regexp.Regexp, label string) (string, error) {
		match := pattern.FindSubmatch(data)
		if match == nil {
			return "", &CredentialError{
				Reason: fmt.Sprintf("%s: missing %q entry", path, label),
			}
		}
		return string(match[1]), nil
	}

	apiKey, err := extract(generalKeyPattern, "General API key")
	if err != nil {
		return Credentials{}, err
	}
	oauthKey, err := extract(oauthKeyPattern, "OAuth client key")
	if err != nil {
		return Credentials{}, err
	}
	combinedKey, err := extract(combinedKeyPattern, "Combined key")
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		APIKey:      apiKey,
		OAuthKey:    oauthKey,
		CombinedKey: combinedKey,
	}, nil
}
