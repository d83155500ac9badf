package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"foo", "/foo"},
		{"/foo", "/foo"},
		{"/foo/", "/foo"},
		{"//foo//bar/", "/foo/bar"},
		{"/foo/../bar", "/bar"},
		{"  /spaced  ", "/spaced"},
		{"/dogwalk-hamburg", "/dogwalk-hamburg"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePath(tc.in), "input %q", tc.in)
	}
}

func TestReserved(t *testing.T) {
	for _, p := range []string{"/api", "/api/generate", "/static/shell.css", "/metrics", "/healthz"} {
		assert.True(t, Reserved(p), p)
	}
	for _, p := range []string{"/", "/apiary", "/staticky", "/pages/api"} {
		assert.False(t, Reserved(p), p)
	}
}
