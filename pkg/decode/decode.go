// Package decode turns parsed request bodies into typed values.
package decode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody indicates a request arrived without a body to decode.
var ErrEmptyBody = errors.New("request body is empty")

type bodyKey struct{}

// Form is a parsed application/x-www-form-urlencoded body. Keys with a
// single value hold a string; repeated keys hold a []string.
type Form map[string]any

// WithBody stores a parsed request body on the context.
func WithBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

// Body returns the parsed request body stored by the body-parsing
// middleware. JSON bodies arrive as the decoded value; URL-encoded
// forms arrive as a Form.
func Body(ctx context.Context) (any, bool) {
	v := ctx.Value(bodyKey{})
	return v, v != nil
}

// FromMap converts a generic map into T via its JSON representation.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}

// Request decodes the request body into T. Form submissions parsed by
// the body middleware go through FromMap; everything else is decoded
// as JSON from r.Body.
func Request[T any](r *http.Request) (T, error) {
	var result T

	if body, ok := Body(r.Context()); ok {
		if form, isForm := body.(Form); isForm {
			return FromMap[T](form)
		}
	}

	if r.Body == nil {
		return result, ErrEmptyBody
	}

	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return result, ErrEmptyBody
		}
		return result, fmt.Errorf("decode body: %w", err)
	}
	return result, nil
}
