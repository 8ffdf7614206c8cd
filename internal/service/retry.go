package service

import "fmt"

// retryOnce runs query and, on failure, runs reconnect and reissues the query
// exactly once. A reconnect failure or a second query failure propagates to
// the caller; there is no backoff and no third attempt.
func retryOnce(query func() error, reconnect func() error) error {
	err := query()
	if err == nil {
		return nil
	}
	if rerr := reconnect(); rerr != nil {
		return fmt.Errorf("reconnect after %v: %w", err, rerr)
	}
	return query()
}
