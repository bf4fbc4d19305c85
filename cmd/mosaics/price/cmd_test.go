// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package price

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/mosaics/mosaic/fee"
)

func TestParseFlags(t *testing.T) {
	require := require.New(t)

	flags := Command().Flags()
	config, err := ParseFlags(flags, []string{
		"--mosaic", "a:x:100",
		"--exponent-mode", "legacy-xor",
		"--strict-definitions",
		"--max-concurrent-lookups", "1",
	})
	require.NoError(err)
	require.Equal(DefaultURI, config.URI)
	require.Len(config.Entries, 1)
	require.Equal(fee.Config{
		ExponentMode:         fee.ExponentLegacyXOR,
		StrictDefinitions:    true,
		MaxConcurrentLookups: 1,
	}, config.Fee)
}

func TestParseFlagsInvalidExponentMode(t *testing.T) {
	flags := Command().Flags()
	_, err := ParseFlags(flags, []string{"--exponent-mode", "xor"})
	require.ErrorIs(t, err, fee.ErrInvalidExponentMode)
}

func TestPriceCommand(t *testing.T) {
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"mosaic":{"id":{"namespaceId":"a","name":"x"},"properties":[{"name":"divisibility","value":"0"},{"name":"initialSupply","value":"1000"}]}}]}`))
	}))
	defer server.Close()

	cmd := Command()
	require.Equal("price", cmd.Name())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{
		"--uri", server.URL,
		"--mosaic", "a:x:100",
	})
	require.NoError(cmd.ExecuteContext(context.Background()))
	require.Equal("a:x 100: 1000000\nfee: 1000000 (1.000000)\n", out.String())
}
