package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/showroom/pkg/validation"
)

type command struct {
	Name     string  `json:"name" validate:"required,max=10"`
	Email    string  `json:"email" validate:"required,email"`
	Price    float64 `json:"price" validate:"gte=0"`
	ImageURL string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Status   string  `json:"status" validate:"omitempty,oneof=new read"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		cmd        command
		wantFields []string
	}{
		{"valid", command{Name: "Lamp", Email: "a@b.co"}, nil},
		{"missing name", command{Email: "a@b.co"}, []string{"name"}},
		{"bad email and price", command{Name: "Lamp", Email: "nope", Price: -1}, []string{"email", "price"}},
		{"long name", command{Name: "abcdefghijk", Email: "a@b.co"}, []string{"name"}},
		{"bad url", command{Name: "Lamp", Email: "a@b.co", ImageURL: "not a url"}, []string{"image_url"}},
		{"bad status", command{Name: "Lamp", Email: "a@b.co", Status: "gone"}, []string{"status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.cmd)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Struct() error = %v", err)
				}
				return
			}

			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("Struct() error = %v, want validation.Errors", err)
			}
			if len(verrs) != len(tt.wantFields) {
				t.Fatalf("errors = %v, want fields %v", verrs, tt.wantFields)
			}
			for i, f := range tt.wantFields {
				if verrs[i].Field != f {
					t.Errorf("verrs[%d].Field = %q, want %q", i, verrs[i].Field, f)
				}
			}
		})
	}
}

func TestErrors_Message(t *testing.T) {
	err := validation.Struct(command{Email: "a@b.co", Price: -2})
	msg := err.Error()

	for _, want := range []string{"name is required", "price must be greater than or equal to 0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestStruct_MaxBytes(t *testing.T) {
	type secret struct {
		Value string `json:"value" validate:"max=8,maxbytes=8"`
	}

	if err := validation.Struct(secret{Value: "abcdefgh"}); err != nil {
		t.Errorf("ascii within limit: %v", err)
	}

	err := validation.Struct(secret{Value: strings.Repeat("é", 5)})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %v, want validation.Errors", err)
	}
	if verrs[0].Field != "value" || verrs[0].Rule != "maxbytes" {
		t.Errorf("failure = %+v, want value/maxbytes", verrs[0])
	}
	if !strings.Contains(err.Error(), "value must be at most 8 bytes") {
		t.Errorf("message = %q", err.Error())
	}
}
