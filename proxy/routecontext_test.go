package proxy

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRouteContext(t *testing.T) {
	ctx := context.Background()
	request := testRequest(PUT, "/todos")

	rctx := NewRouteContext(ctx, request)

	assert.Equal(t, ctx, rctx.Context)
	assert.Equal(t, request, rctx.Request)
	assert.Empty(t, rctx.Params)
}

func TestRouteContext_Body(t *testing.T) {
	request := testRequest(POST, "/todos")
	request.Body = `{"todo":"buy milk"}`

	ctx := &RouteContext{Request: request}

	actual, err := ctx.Body()

	assert.NoError(t, err)
	assert.Equal(t, `{"todo":"buy milk"}`, actual)
}

func TestRouteContext_Body_encoded(t *testing.T) {
	request := testRequest(POST, "/todos")
	request.Body = base64.StdEncoding.EncodeToString([]byte(`{"todo":"walk dog"}`))
	request.IsBase64Encoded = true

	ctx := &RouteContext{Request: request}

	actual, err := ctx.Body()

	assert.NoError(t, err)
	assert.Equal(t, `{"todo":"walk dog"}`, actual)
}

func TestRouteContext_Body_error(t *testing.T) {
	request := testRequest(POST, "/todos")
	request.Body = "sefdfxsdf.d.dsd"
	request.IsBase64Encoded = true

	ctx := &RouteContext{Request: request}

	_, err := ctx.Body()

	assert.Error(t, err)
}
