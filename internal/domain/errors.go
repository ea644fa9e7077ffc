package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input is malformed or
// out of range (e.g. missing payload, month outside 1-12, start after end).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNoData is returned by report functions when the requested period holds
// no freight records. It is an outcome, not a failure: there is nothing to
// report, so no document is produced.
// Handlers should map this to HTTP 404 with code "no_data".
var ErrNoData = errors.New("no data for period")
