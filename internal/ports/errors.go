package ports

import "errors"

// ErrProviderUnavailable marks a recoverable failure of a single external
// data provider: missing credential, network error, non-2xx response, or
// malformed payload. Callers recover by moving to the next provider in
// their fallback chain; it is never surfaced to the end user directly.
var ErrProviderUnavailable = errors.New("provider unavailable")
