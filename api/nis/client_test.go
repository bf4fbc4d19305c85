// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package nis

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/mosaics/mosaic"
)

const definitionPageJSON = `{
	"data": [
		{
			"meta": {"id": 26},
			"mosaic": {
				"creator": "10cfe522d3c8dde2a58f46d5e5b0f1ca7d2e4a1ef8c2c0c1a07a65f4bd1a7ee7",
				"description": "gift vouchers",
				"id": {"namespaceId": "alice.vouchers", "name": "gift"},
				"properties": [
					{"name": "divisibility", "value": "0"},
					{"name": "initialSupply", "value": "1000"},
					{"name": "supplyMutable", "value": "false"},
					{"name": "transferable", "value": "true"}
				],
				"levy": {}
			}
		},
		{
			"meta": {"id": 27},
			"mosaic": {
				"id": {"namespaceId": "alice.vouchers", "name": "points"},
				"properties": [
					{"name": "initialSupply", "value": "9000000000"},
					{"name": "divisibility", "value": "6"}
				]
			}
		}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, server.Client())
	require.NoError(t, err)
	return client
}

func TestGetMosaicDefinitions(t *testing.T) {
	require := require.New(t)

	var (
		path      string
		namespace string
	)
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		namespace = r.URL.Query().Get("namespace")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(definitionPageJSON))
	})

	definitions, err := client.GetMosaicDefinitions(context.Background(), "alice.vouchers")
	require.NoError(err)
	require.Equal(definitionPagePath, path)
	require.Equal("alice.vouchers", namespace)
	require.Equal([]mosaic.Definition{
		{
			ID:           mosaic.ID{NamespaceID: "alice.vouchers", Name: "gift"},
			Divisibility: 0,
			Supply:       1000,
		},
		{
			ID:           mosaic.ID{NamespaceID: "alice.vouchers", Name: "points"},
			Divisibility: 6,
			Supply:       9_000_000_000,
		},
	}, definitions)
}

func TestGetMosaicDefinitionsEmpty(t *testing.T) {
	require := require.New(t)

	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	definitions, err := client.GetMosaicDefinitions(context.Background(), "bob")
	require.NoError(err)
	require.Empty(definitions)
}

func TestGetMosaicDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
	}{
		{
			name:        "unknown namespace",
			status:      http.StatusNotFound,
			body:        `{"status":404,"error":"Not Found","message":"invalid namespace"}`,
			expectedErr: ErrNamespaceNotFound,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			expectedErr: ErrRequestFailed,
		},
		{
			name:        "bad json",
			status:      http.StatusOK,
			body:        `{"data":`,
			expectedErr: ErrRequestFailed,
		},
		{
			name:        "missing supply",
			status:      http.StatusOK,
			body:        `{"data":[{"mosaic":{"id":{"namespaceId":"a","name":"x"},"properties":[{"name":"divisibility","value":"0"}]}}]}`,
			expectedErr: ErrMalformedDefinition,
		},
		{
			name:        "non numeric divisibility",
			status:      http.StatusOK,
			body:        `{"data":[{"mosaic":{"id":{"namespaceId":"a","name":"x"},"properties":[{"name":"divisibility","value":"six"},{"name":"initialSupply","value":"1"}]}}]}`,
			expectedErr: ErrMalformedDefinition,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})

			_, err := client.GetMosaicDefinitions(context.Background(), "a")
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestNewClientInvalidURI(t *testing.T) {
	for _, uri := range []string{"", "localhost", "://bad"} {
		_, err := NewClient(uri, nil)
		require.Error(t, err, uri)
	}
}

// definitionPage serves one definition per id, named after its id.
func definitionPage(ids ...int64) string {
	data := make([]string, len(ids))
	for i, id := range ids {
		data[i] = fmt.Sprintf(`{"meta":{"id":%d},"mosaic":{"id":{"namespaceId":"a","name":"m%d"},"properties":[{"name":"divisibility","value":"0"},{"name":"initialSupply","value":"1000"}]}}`, id, id)
	}
	return `{"data":[` + strings.Join(data, ",") + `]}`
}

func idRange(from, to int64) []int64 {
	var ids []int64
	for id := from; id >= to; id-- {
		ids = append(ids, id)
	}
	return ids
}

func TestGetMosaicDefinitionsFollowsPages(t *testing.T) {
	require := require.New(t)

	var cursors []string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("id")
		cursors = append(cursors, cursor)
		switch cursor {
		case "":
			_, _ = w.Write([]byte(definitionPage(idRange(200, 101)...)))
		case "101":
			_, _ = w.Write([]byte(definitionPage(50)))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	definitions, err := client.GetMosaicDefinitions(context.Background(), "a")
	require.NoError(err)
	require.Equal([]string{"", "101"}, cursors)
	require.Len(definitions, MaxPageSize+1)
	require.Equal("m200", definitions[0].Name)
	require.Equal("m50", definitions[MaxPageSize].Name)
}

func TestGetMosaicDefinitionsExactPageIssuesFollowUp(t *testing.T) {
	require := require.New(t)

	requests := 0
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("id") == "" {
			_, _ = w.Write([]byte(definitionPage(idRange(100, 1)...)))
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	definitions, err := client.GetMosaicDefinitions(context.Background(), "a")
	require.NoError(err)
	require.Equal(2, requests)
	require.Len(definitions, MaxPageSize)
}

func TestGetMosaicDefinitionsStuckCursor(t *testing.T) {
	require := require.New(t)

	requests := 0
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(definitionPage(idRange(100, 1)...)))
	})

	_, err := client.GetMosaicDefinitions(context.Background(), "a")
	require.ErrorIs(err, ErrRequestFailed)
	require.Equal(2, requests)
}
