package stackhost

import (
	"context"
	"fmt"

	"stackmcp/pkg/logging"

	"github.com/google/uuid"
)

// accountInfoPath is the endpoint that reveals the caller's account
// identifier. Most backend paths are scoped under that identifier.
const accountInfoPath = "/reseller"

// AccountID returns the caller's account identifier, resolving it on first
// use and memoizing it for the process lifetime. Concurrent first callers
// share a single in-flight resolution; a failed resolution is not cached,
// so the next caller retries.
func (c *Client) AccountID(ctx context.Context) (string, error) {
	c.mu.RLock()
	cached := c.accountID
	c.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	result, err, shared := c.resolveGroup.Do("account-id", func() (interface{}, error) {
		body, err := c.Get(ctx, accountInfoPath)
		if err != nil {
			return nil, &ContextResolutionError{Err: err}
		}

		id, err := extractAccountID(body)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.accountID = id
		c.mu.Unlock()

		logging.Info("Account", "Resolved account identifier %s", id)
		return id, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		logging.Debug("Account", "Joined in-flight account resolution")
	}

	return result.(string), nil
}

// extractAccountID normalizes the two shapes the account-info endpoint has
// been observed to return: a structured object carrying an id field, or a
// bare identifier string with no enclosing object.
func extractAccountID(body interface{}) (string, error) {
	switch v := body.(type) {
	case string:
		if uuid.Validate(v) == nil {
			return v, nil
		}
		return "", &ContextResolutionError{
			Err: fmt.Errorf("bare response %q is not an account identifier", snippet(v)),
		}

	case map[string]interface{}:
		for _, key := range []string{"id", "accountId", "account_id"} {
			if id, ok := v[key].(string); ok && id != "" {
				return id, nil
			}
		}
		return "", &ContextResolutionError{
			Err: fmt.Errorf("account info object carries no identifier field"),
		}

	default:
		return "", &ContextResolutionError{
			Err: fmt.Errorf("unexpected account info shape %T", body),
		}
	}
}
