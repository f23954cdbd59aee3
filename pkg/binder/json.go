package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DefaultMaxJSONSize caps JSON request bodies.
const DefaultMaxJSONSize = 1 << 20

// JSON binds an application/json body. Requests with another content type,
// and Datastar requests (see Signals), yield ErrBinderNotApplicable.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" || isDatastar(r) {
			return ErrBinderNotApplicable
		}
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidJSON, DefaultMaxJSONSize)
		}
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}

		if err := json.Unmarshal(body, v); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return fmt.Errorf("%w: invalid JSON at offset %d", ErrInvalidJSON, syntaxErr.Offset)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil
	}
}

// Signals binds the Datastar signal store sent by the browser, either as a
// JSON body or as the `datastar` query parameter on GET requests. Requests
// not issued by Datastar yield ErrBinderNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDatastar(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}

func isDatastar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}
