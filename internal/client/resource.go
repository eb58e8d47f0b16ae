package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/xminds-client/internal/http"
	"github.com/fivetwenty-io/xminds-client/pkg/xminds"
)

// execute sends one catalog operation through httpClient. API errors are
// returned as is so callers can inspect them; anything else is wrapped with
// the operation name.
func execute(
	ctx context.Context,
	httpClient *http.Client,
	name xminds.Operation,
	pathParams map[string]string,
	query, body map[string]any,
) (*xminds.Value, error) {
	spec, ok := xminds.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", xminds.ErrUnknownOperation, name)
	}

	for _, param := range spec.PathParams() {
		if pathParams[param] == "" {
			return nil, fmt.Errorf("%w: %s requires a non-empty %s", xminds.ErrMissingArgument, name, param)
		}
	}

	resp, err := httpClient.Do(ctx, &http.Request{
		Method:          spec.Method,
		Path:            spec.ExpandPath(pathParams),
		Query:           query,
		Body:            body,
		Unauthenticated: spec.Unauthenticated,
	})
	if err != nil {
		if apiErr, ok := xminds.AsAPIError(err); ok {
			return nil, apiErr
		}

		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return resp.Envelope, nil
}

// optional returns nil for the zero string so the executor drops the field.
func optional(s string) any {
	if s == "" {
		return nil
	}

	return s
}
