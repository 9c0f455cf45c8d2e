package backend

import (
	"context"
	"net/url"
	"strconv"

	"foodgram-admin/internal/dto/response"
)

// pageValues builds the page/size query shared by every list endpoint
func pageValues(page, size int) url.Values {
	v := url.Values{}
	if page < 0 {
		page = 0
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("size", strconv.Itoa(size))
	return v
}

// setOptional adds a filter only when it carries a value. An omitted filter
// means "no constraint"; it must never serialize as an empty query param.
func setOptional(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// listPage fetches one page of a resource collection
func listPage[T any](ctx context.Context, c *Client, path string, query url.Values) (*response.Page[T], error) {
	var page response.Page[T]
	if err := c.Get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	return &page, nil
}
