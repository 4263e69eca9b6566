package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// APIError is a non-success reply from the server.
type APIError struct {
	Status  int32
	Message string
	Fields  map[string]string
}

var _ openapierrors.Error = (*APIError)(nil)

func (e *APIError) Code() int32 {
	return e.Status
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("[%d] %s", e.Status, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("[%d] %s: %s", e.Status, e.Message, strings.Join(parts, "; "))
}

// IsNotFound reports whether err is a 404 reply.
func IsNotFound(err error) bool {
	var apiErr openapierrors.Error
	return errors.As(err, &apiErr) && apiErr.Code() == http.StatusNotFound
}

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// ResourceClient performs CRUD calls for one resource path.
type ResourceClient[T any] struct {
	resource  string
	transport runtime.ClientTransport
	formats   strfmt.Registry
}

func NewResourceClient[T any](resource string, transport runtime.ClientTransport, formats strfmt.Registry) *ResourceClient[T] {
	return &ResourceClient[T]{
		resource:  resource,
		transport: transport,
		formats:   formats,
	}
}

func (c *ResourceClient[T]) Resource() string {
	return c.resource
}

func (c *ResourceClient[T]) List(ctx context.Context) ([]*T, error) {
	records := make([]*T, 0)
	err := c.submit(ctx, "list", http.MethodGet, "/"+c.resource, noParams, http.StatusOK, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *ResourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	record := new(T)
	err := c.submit(ctx, "get", http.MethodGet, "/"+c.resource+"/{id}", idParams(id, nil), http.StatusOK, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create posts body, typically a map or a domain input struct.
func (c *ResourceClient[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	params := runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
		return r.SetBodyParam(body)
	})

	record := new(T)
	if err := c.submit(ctx, "create", http.MethodPost, "/"+c.resource, params, http.StatusCreated, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (c *ResourceClient[T]) Update(ctx context.Context, id string, body interface{}) (*T, error) {
	record := new(T)
	err := c.submit(ctx, "update", http.MethodPut, "/"+c.resource+"/{id}", idParams(id, body), http.StatusOK, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *ResourceClient[T]) Delete(ctx context.Context, id string) error {
	return c.submit(ctx, "delete", http.MethodDelete, "/"+c.resource+"/{id}", idParams(id, nil), http.StatusNoContent, nil)
}

func (c *ResourceClient[T]) submit(
	ctx context.Context,
	op, method, path string,
	params runtime.ClientRequestWriter,
	expected int,
	out interface{},
) error {
	_, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 op + "-" + c.resource,
		Method:             method,
		PathPattern:        path,
		ProducesMediaTypes: []string{runtime.JSONMime},
		ConsumesMediaTypes: []string{runtime.JSONMime},
		Params:             params,
		Reader:             responseReader(expected, out),
		Context:            ctx,
	})
	return err
}

var noParams = runtime.ClientRequestWriterFunc(func(runtime.ClientRequest, strfmt.Registry) error {
	return nil
})

func idParams(id string, body interface{}) runtime.ClientRequestWriterFunc {
	return func(r runtime.ClientRequest, _ strfmt.Registry) error {
		if err := validate.RequiredString("id", "path", id); err != nil {
			return err
		}
		if err := r.SetPathParam("id", id); err != nil {
			return err
		}
		if body != nil {
			return r.SetBodyParam(body)
		}
		return nil
	}
}

func responseReader(expected int, out interface{}) runtime.ClientResponseReaderFunc {
	return func(resp runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
		if resp.Code() != expected {
			var body errorBody
			_ = consumer.Consume(resp.Body(), &body)
			if body.Message == "" {
				body.Message = resp.Message()
			}
			return nil, &APIError{
				Status:  int32(resp.Code()),
				Message: body.Message,
				Fields:  body.Fields,
			}
		}

		if out == nil {
			return nil, nil
		}
		if err := consumer.Consume(resp.Body(), out); err != nil {
			return nil, fmt.Errorf("decode %d response: %w", resp.Code(), err)
		}
		return out, nil
	}
}
