package decode_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/showroom/pkg/decode"
)

type contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func TestFromMap(t *testing.T) {
	got, err := decode.FromMap[contact](map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if got.Name != "Ada" || got.Email != "ada@example.com" {
		t.Errorf("FromMap() = %+v", got)
	}
}

func TestBody_Missing(t *testing.T) {
	if _, ok := decode.Body(context.Background()); ok {
		t.Error("Body() reported a value on an empty context")
	}
}

func TestRequest_JSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ada","message":"hi"}`))

	got, err := decode.Request[contact](req)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if got.Name != "Ada" || got.Message != "hi" {
		t.Errorf("Request() = %+v", got)
	}
}

func TestRequest_Form(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(decode.WithBody(req.Context(), decode.Form{
		"name":    "Grace",
		"email":   "grace@example.com",
		"message": "hello",
	}))

	got, err := decode.Request[contact](req)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if got.Name != "Grace" || got.Email != "grace@example.com" || got.Message != "hello" {
		t.Errorf("Request() = %+v", got)
	}
}

func TestRequest_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	_, err := decode.Request[contact](req)
	if !errors.Is(err, decode.ErrEmptyBody) {
		t.Errorf("Request() error = %v, want %v", err, decode.ErrEmptyBody)
	}
}

func TestRequest_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

	if _, err := decode.Request[contact](req); err == nil {
		t.Error("Request() should fail on malformed JSON")
	}
}
