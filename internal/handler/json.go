package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // status line already sent
	json.NewEncoder(w).Encode(v)
}

// errEmptyBody is returned by decodeJSON when the request carries no body.
var errEmptyBody = errors.New("request body is empty")

// decodeJSON decodes the request body into dst, rejecting unknown fields.
// Returns errEmptyBody when there is nothing to decode.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// isTooLarge reports whether err came from a body cut off by http.MaxBytesReader.
func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
