// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"fmt"
	"testing"
)

func TestSecretRedaction(t *testing.T) {
	s := FromString("supersecret")
	if fmt.Sprintf("%v", s) != "[SECRET]" {
		t.Fatalf("unexpected fmt output: %q", fmt.Sprintf("%v", s))
	}
	if fmt.Sprintf("%#v", s) != "[SECRET]" {
		t.Fatalf("unexpected %%#v output: %q", fmt.Sprintf("%#v", s))
	}
	if s.Reveal() != "supersecret" {
		t.Fatalf("Reveal returned %q", s.Reveal())
	}
}

func TestSecretZero(t *testing.T) {
	s := FromString("abc123")
	(&s).Zero()
	for i := range s {
		if s[i] != 0 {
			t.Fatalf("expected zeroed byte at index %d, got %d", i, s[i])
		}
	}
}

func TestMask(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"abc":              "***",
		"abcd":             "****",
		"eyJhbGciOi.token": "********oken",
	}
	for in, want := range cases {
		if got := Mask(in); got != want {
			t.Fatalf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}
