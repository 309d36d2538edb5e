package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHttpMethod_String(t *testing.T) {
	cases := []struct {
		method   HttpMethod
		expected string
	}{
		{GET, "GET"},
		{HEAD, "HEAD"},
		{POST, "POST"},
		{PUT, "PUT"},
		{DELETE, "DELETE"},
		{CONNECT, "CONNECT"},
		{OPTIONS, "OPTIONS"},
		{TRACE, "TRACE"},
		{PATCH, "PATCH"},
		{HttpMethod(42), "HttpMethod(42)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.method.String())
	}
}
