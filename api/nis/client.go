// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nis is a client for the mosaic definition endpoints of a NEM
// infrastructure server.
package nis

import (
	"context"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/luxfi/mosaics/mosaic"
	"github.com/luxfi/mosaics/mosaic/fee"
	"github.com/luxfi/mosaics/utils/rpc"
)

const (
	definitionPagePath = "/namespace/mosaic/definition/page"

	// Largest page a node will serve.
	MaxPageSize = 100

	DefaultRequestTimeout = 10 * time.Second
)

var (
	_ fee.Lookup = (*Client)(nil)

	ErrNamespaceNotFound   = errors.New("namespace not found")
	ErrRequestFailed       = errors.New("request failed")
	ErrMalformedDefinition = errors.New("malformed mosaic definition")
)

type Client struct {
	uri        *url.URL
	httpClient *http.Client
}

// NewClient returns a client for the node at uri. If httpClient is nil, a
// client with DefaultRequestTimeout is used.
func NewClient(uri string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid node uri %q: %w", uri, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid node uri %q: missing scheme or host", uri)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultRequestTimeout}
	}
	return &Client{
		uri:        u,
		httpClient: httpClient,
	}, nil
}

// GetMosaicDefinitions returns the mosaic definitions registered directly
// under namespaceID, in the order the node reports them. Pages are followed
// through the node's id cursor until a short page is served. Failures are not
// retried.
func (c *Client) GetMosaicDefinitions(ctx context.Context, namespaceID string) ([]mosaic.Definition, error) {
	var (
		definitions []mosaic.Definition
		cursor      int64
		hasCursor   bool
	)
	for {
		page, err := c.getDefinitionPage(ctx, namespaceID, cursor, hasCursor)
		if err != nil {
			return nil, err
		}
		for i := range page.Data {
			def, err := page.Data[i].Mosaic.Definition()
			if err != nil {
				return nil, err
			}
			definitions = append(definitions, def)
		}
		if len(page.Data) < MaxPageSize {
			return definitions, nil
		}

		// Ids are served in descending order; the last one is the next cursor.
		next := page.Data[len(page.Data)-1].Meta.ID
		if hasCursor && next >= cursor {
			return nil, fmt.Errorf("%w: namespace %q: page cursor %d did not advance past %d", ErrRequestFailed, namespaceID, next, cursor)
		}
		cursor = next
		hasCursor = true
	}
}

func (c *Client) getDefinitionPage(ctx context.Context, namespaceID string, cursor int64, hasCursor bool) (*DefinitionPage, error) {
	query := url.Values{
		"namespace": []string{namespaceID},
		"pagesize":  []string{strconv.Itoa(MaxPageSize)},
	}
	if hasCursor {
		query.Set("id", strconv.FormatInt(cursor, 10))
	}
	u := c.uri.JoinPath(definitionPagePath)
	u.RawQuery = query.Encode()

	page := &DefinitionPage{}
	if err := rpc.SendJSONRequest(ctx, c.httpClient, u, page); err != nil {
		return nil, mapError(namespaceID, err)
	}
	return page, nil
}

func mapError(namespaceID string, err error) error {
	var statusErr *rpc.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: namespace %q: %w", ErrRequestFailed, namespaceID, err)
	}

	message := string(statusErr.Body)
	reply := ErrorReply{}
	if stdjson.Unmarshal(statusErr.Body, &reply) == nil && reply.Message != "" {
		message = reply.Message
	}
	if statusErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %q: %s", ErrNamespaceNotFound, namespaceID, message)
	}
	return fmt.Errorf("%w: namespace %q: status %d: %s", ErrRequestFailed, namespaceID, statusErr.StatusCode, message)
}
