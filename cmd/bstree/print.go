/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package bstree

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seipan/bstree/bstree"
)

var printCmd = &cobra.Command{
	Use:   "print KEY...",
	Short: "Insert integer keys in order and print the resulting tree",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := bstree.New[int, int]()
		for _, arg := range args {
			k, err := strconv.Atoi(arg)
			if err != nil {
				return errors.Wrapf(err, "key %q", arg)
			}
			if !tree.Insert(k, k) {
				log.WithField("key", k).Warn("duplicate key ignored")
			}
		}

		out := cmd.OutOrStdout()
		if err := tree.Print(out); err != nil {
			return err
		}
		fmt.Fprintf(out, "keys: %v\n", tree.Keys())
		fmt.Fprintf(out, "size: %d\n", tree.Len())
		fmt.Fprintf(out, "height: %d\n", tree.Height())
		fmt.Fprintf(out, "external path length: %d\n", tree.ExternalPathLength())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
