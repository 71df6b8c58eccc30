package keys_test

import (
	"testing"

	"github.com/goliatone/go-formcheck/pkg/keys"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain lowercase", "email", "email"},
		{"mixed case", "LastName", "lastname"},
		{"hyphen separator", "Last-Name", "lastname"},
		{"underscore separator", "last_name", "lastname"},
		{"space separator", "LAST NAME", "lastname"},
		{"digits preserved", "address-2", "address2"},
		{"punctuation stripped", "e.mail (work)!", "emailwork"},
		{"unicode stripped", "naïve", "nave"},
		{"empty", "", ""},
		{"only separators", "--__  ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Normalize(tc.raw); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Last-Name", "last_name", "LAST NAME", "address 2", ""}
	for _, raw := range inputs {
		once := keys.Normalize(raw)
		twice := keys.Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeSeparatorInsensitive(t *testing.T) {
	variants := []string{"Last-Name", "last_name", "LAST NAME", "lastname", "Last.Name"}
	want := keys.Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := keys.Normalize(v); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}
