// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package encode

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/mosaics/mosaic"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode",
		Short: "Prints the encoded mosaic list",
		RunE:  encodeFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func encodeFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	list, err := mosaic.Encode(config.Entries)
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "length: %d\n", list.Len())
	fmt.Fprintf(out, "bytes: %s\n", hex.EncodeToString(list.Bytes()))
	return nil
}
