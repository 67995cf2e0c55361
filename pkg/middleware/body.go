package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/JaimeStill/showroom/pkg/decode"
	"github.com/JaimeStill/showroom/pkg/handlers"
)

var (
	errMalformedJSON = errors.New("malformed JSON body")
	errMalformedForm = errors.New("malformed form body")
)

// ParseBody returns middleware that parses JSON and URL-encoded request
// bodies up to maxBytes and stores the result with decode.WithBody.
// JSON bodies remain readable from r.Body afterwards. Other content
// types pass through untouched.
func ParseBody(maxBytes int64, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			switch mediaType(r) {
			case "json":
				body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
				if err != nil {
					respondBodyError(w, logger, err, errMalformedJSON)
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
				if len(bytes.TrimSpace(body)) > 0 {
					var parsed any
					if err := json.Unmarshal(body, &parsed); err != nil {
						handlers.RespondError(w, logger, http.StatusBadRequest, errMalformedJSON)
						return
					}
					r = r.WithContext(decode.WithBody(r.Context(), parsed))
				}
			case "form":
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
				if err := r.ParseForm(); err != nil {
					respondBodyError(w, logger, err, errMalformedForm)
					return
				}
				r = r.WithContext(decode.WithBody(r.Context(), toForm(r)))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	switch {
	case mt == "application/json", strings.HasSuffix(mt, "+json"):
		return "json"
	case mt == "application/x-www-form-urlencoded":
		return "form"
	default:
		return ""
	}
}

func respondBodyError(w http.ResponseWriter, logger *slog.Logger, err, malformed error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		handlers.RespondError(w, logger, http.StatusRequestEntityTooLarge,
			fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	handlers.RespondError(w, logger, http.StatusBadRequest, malformed)
}

func toForm(r *http.Request) decode.Form {
	form := make(decode.Form, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) == 1 {
			form[key] = values[0]
			continue
		}
		form[key] = values
	}
	return form
}
