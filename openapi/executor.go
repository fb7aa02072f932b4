package openapi

import (
	"context"

	"github.com/pkg/errors"
)

// do 执行一次请求。失败只写入一次 recorder，不做重试
func (o *openAPI) do(ctx context.Context, action string, params Params) (*Result, error) {
	req, err := buildRequest(action, params)
	if err != nil {
		return o.fail(ctx, action, err)
	}

	r := o.request(ctx)
	switch req.Location {
	case LocationBody:
		r.SetBody(map[string]any(req.Params))
	case LocationQuery:
		r.SetQueryParams(req.Query())
	}

	resp, err := r.Execute(req.Method, o.Endpoint(req.Path))
	if err != nil {
		return o.fail(ctx, action, errors.Wrapf(err, "%s %s", req.Method, req.Path))
	}
	if !resp.IsSuccess() {
		return o.fail(ctx, action, newAPIError(resp.StatusCode(), resp.Body()))
	}

	result, err := decodeResult(resp.Body())
	if err != nil {
		return o.fail(ctx, action, err)
	}
	return result, nil
}

func (o *openAPI) fail(ctx context.Context, action string, err error) (*Result, error) {
	o.recorder.RecordFailure(ctx, action, err)
	return failedResult(err), err
}
