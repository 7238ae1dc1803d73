// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIntParam(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 7, false},
		{"limit=3", 3, false},
		{"limit=%20-2%20", -2, false},
		{"limit=abc", 0, true},
		{"limit=1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
			got, err := intParam(r, "limit", 7)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("intParam(%q) = %d, %v; want %d, wantErr %v", tt.query, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestFloatParam(t *testing.T) {
	tests := []struct {
		query   string
		want    float64
		wantErr bool
	}{
		{"", 0.5, false},
		{"threshold=0.25", 0.25, false},
		{"threshold=NaN", 0, true},
		{"threshold=Inf", 0, true},
		{"threshold=high", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
			got, err := floatParam(r, "threshold", 0.5)
			if (err != nil) != tt.wantErr || got != tt.want {
				t.Errorf("floatParam(%q) = %v, %v; want %v, wantErr %v", tt.query, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		input   string
		wantErr bool
		empty   bool
	}{
		{"valid", `{"name":"a"}`, false, false},
		{"trailing whitespace", "{\"name\":\"a\"}\n ", false, false},
		{"empty", "", true, true},
		{"whitespace only", "  \n", true, true},
		{"unknown field", `{"name":"a","age":3}`, true, false},
		{"two values", `{"name":"a"}{"name":"b"}`, true, false},
		{"malformed", `{"name":`, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.input))
			var v body
			err := decodeJSON(r, &v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeJSON(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if errors.Is(err, errEmptyBody) != tt.empty {
				t.Errorf("decodeJSON(%q) empty = %v, want %v", tt.input, errors.Is(err, errEmptyBody), tt.empty)
			}
		})
	}
}
