// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rpc holds the HTTP plumbing shared by node API clients.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxErrorBodyLen bounds how much of a failed response is kept for the error.
const maxErrorBodyLen = 4096

var _ error = (*StatusError)(nil)

// StatusError is returned when a node answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received status code %d: %s", e.StatusCode, e.Body)
}

// SendJSONRequest issues a GET to uri and decodes the JSON response body into
// reply.
func SendJSONRequest(
	ctx context.Context,
	client *http.Client,
	uri *url.URL,
	reply interface{},
) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, uri.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	resp, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		_ = CleanlyCloseBody(resp.Body)
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(reply); err != nil {
		_ = CleanlyCloseBody(resp.Body)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return CleanlyCloseBody(resp.Body)
}

// CleanlyCloseBody drains and closes an HTTP response body so the underlying
// connection can be reused.
func CleanlyCloseBody(body io.ReadCloser) error {
	if body == nil {
		return nil
	}

	_, err := io.Copy(io.Discard, body)
	return errors.Join(err, body.Close())
}
