package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/todolambda/lambdautils"
	"github.com/prognoshealth/todolambda/proxy"
)

// Fixed response messages.
const (
	OKMessage          = "ok"
	MissingBodyMessage = "Missing request body"
	MissingTodoMessage = "Todo is missing"
	MissingIDMessage   = "ID is missing"
)

// Handler dispatches api gateway requests on their method to the store. Every
// outcome, including failures, is returned as a json response carrying
// permissive CORS headers.
type Handler struct {
	store   Store
	logger  *logrus.Logger
	router  *proxy.Router
	headers map[string]string

	newID func() string
}

// NewHandler returns a handler backed by store.
func NewHandler(store Store, logger *logrus.Logger) *Handler {
	h := &Handler{
		store:  store,
		logger: logger,
		newID:  NewID,
	}

	router := &proxy.Router{}
	router.OPTIONS(proxy.AnyPath, h.options)
	router.GET(proxy.AnyPath, h.list)
	router.POST(proxy.AnyPath, h.withRequest(h.create))
	router.DELETE(proxy.AnyPath, h.withRequest(h.remove))
	router.AddCatchAllHandler(h.unsupported)
	router.AddErrorHandler(h.fail)

	h.router = router
	h.headers = proxy.CORSHeaders("*", router.Methods())

	return h
}

// Handle is the lambda entry point. The returned error is always nil.
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if !h.router.Valid() {
		return h.fail(ctx, request, h.router.BuildErrors())
	}

	return h.router.Route(ctx, request)
}

func (h *Handler) respond(status int, payload interface{}) (events.APIGatewayProxyResponse, error) {
	return proxy.JSONResponse(status, h.headers, payload)
}

func (h *Handler) options(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	return h.respond(http.StatusOK, OKMessage)
}

func (h *Handler) list(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	items, err := h.store.List(rctx.Context)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	if items == nil {
		items = []Item{}
	}

	return h.respond(http.StatusOK, items)
}

type requestHandler func(*proxy.RouteContext, Request) (events.APIGatewayProxyResponse, error)

// withRequest rejects requests without a body and decodes the body for next.
func (h *Handler) withRequest(next requestHandler) proxy.RouteHandler {
	return func(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
		req, err := readRequest(rctx)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}

		if req == nil {
			return h.respond(http.StatusInternalServerError, MissingBodyMessage)
		}

		return next(rctx, *req)
	}
}

// readRequest returns nil when the request has no body.
func readRequest(rctx *proxy.RouteContext) (*Request, error) {
	body, err := rctx.Body()
	if err != nil {
		return nil, err
	}

	if body == "" {
		return nil, nil
	}

	req := new(Request)
	if err := json.Unmarshal([]byte(body), req); err != nil {
		return nil, errors.Wrapf(err, "failed parsing %s request body", rctx.Request.HTTPMethod)
	}

	return req, nil
}

func (h *Handler) create(rctx *proxy.RouteContext, req Request) (events.APIGatewayProxyResponse, error) {
	if req.Todo == "" {
		return h.respond(http.StatusInternalServerError, MissingTodoMessage)
	}

	item := Item{ID: req.ID, Todo: req.Todo}
	if item.ID == "" {
		item.ID = h.newID()
	}

	h.logger.WithField("id", item.ID).Debug("putting todo")

	if err := h.store.Put(rctx.Context, item); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return h.respond(http.StatusOK, fmt.Sprintf("%s added to the database", item.Todo))
}

func (h *Handler) remove(rctx *proxy.RouteContext, req Request) (events.APIGatewayProxyResponse, error) {
	if req.ID == "" {
		return h.respond(http.StatusInternalServerError, MissingIDMessage)
	}

	h.logger.WithField("id", req.ID).Debug("deleting todo")

	if err := h.store.Delete(rctx.Context, req.ID); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return h.respond(http.StatusOK, fmt.Sprintf("Todo item with an id of %s deleted", req.ID))
}

// unsupported handles every method without a route. The body is still
// required and parsed first so those failures take precedence.
func (h *Handler) unsupported(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.withRequest(func(rctx *proxy.RouteContext, _ Request) (events.APIGatewayProxyResponse, error) {
		return h.respond(http.StatusInternalServerError,
			fmt.Sprintf("We only accept GET requests for now, not %s", rctx.Request.HTTPMethod))
	})(proxy.NewRouteContext(ctx, request))
}

// fail logs err and returns it as the body of a 500 response.
func (h *Handler) fail(ctx context.Context, request events.APIGatewayProxyRequest, err error) (events.APIGatewayProxyResponse, error) {
	meta := lambdautils.GetLambdaMetaData(ctx)
	h.logger.WithFields(meta.Fields()).
		WithField("method", request.HTTPMethod).
		WithError(err).
		Error("failed handling todo request")

	response, rerr := h.respond(http.StatusInternalServerError, err)
	if rerr != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError, Headers: h.headers}, nil
	}

	return response, nil
}
