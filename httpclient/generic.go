//nolint:ireturn
package httpclient

import (
	"context"
	"net/http"
)

func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	var result T
	err := c.Get(ctx, path, &result, opts...)

	return result, err
}

func PostJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Post(ctx, path, body, &result, opts...)

	return result, err
}

func PutJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Put(ctx, path, body, &result, opts...)

	return result, err
}

func PatchJSON[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Patch(ctx, path, body, &result, opts...)

	return result, err
}

func DeleteJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	var result T
	err := c.Delete(ctx, path, &result, opts...)

	return result, err
}

func DoJSON[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	var result T
	err := c.Do(ctx, method, path, body, &result, opts...)

	return result, err
}

func (c *Client) Head(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Request(ctx, http.MethodHead, path, opts...)
}

func (c *Client) Options(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Request(ctx, http.MethodOptions, path, opts...)
}
