package proxy

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// CORSHeaders returns the headers allowing origin to call the given methods.
func CORSHeaders(origin string, methods []HttpMethod) map[string]string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}

	return map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Methods": strings.Join(names, ","),
	}
}

// JSONResponse serializes payload as 2 space indented json and wraps it in a
// response with a copy of headers. An error payload is serialized as its
// message.
func JSONResponse(status int, headers map[string]string, payload interface{}) (events.APIGatewayProxyResponse, error) {
	if err, ok := payload.(error); ok {
		payload = err.Error()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(payload); err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrapf(err, "failed encoding %T response", payload)
	}

	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    h,
		Body:       strings.TrimSuffix(buf.String(), "\n"),
	}, nil
}
