package xmclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"api.crossingminds.com", "https://api.crossingminds.com"},
		{" https://api.crossingminds.com/ ", "https://api.crossingminds.com/"},
		{"http://localhost:8080/", "http://localhost:8080/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeEndpoint(tt.in), "input %q", tt.in)
	}
}
