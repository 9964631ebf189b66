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
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seipan/bstree/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time insert, search, iterate, clone and remove against a map",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := benchConfig(cmd)
		if err != nil {
			return err
		}

		runner, err := bench.NewRunner(cfg, log)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"keys":   cfg.Keys,
			"rounds": cfg.Rounds,
			"sorted": cfg.Sorted,
			"seed":   cfg.Seed,
		}).Info("running benchmark")

		report, err := runner.Run()
		if err != nil {
			return err
		}
		for _, res := range report.Results {
			log.WithFields(logrus.Fields{
				"op":          res.Op,
				"tree":        res.Tree,
				"map":         res.Map,
				"visited_avg": res.VisitedAvg,
			}).Info("result")
		}
		return report.Print(cmd.OutOrStdout())
	},
}

// benchConfig は設定ファイルを読み込み、明示的に指定されたフラグで上書きする。
func benchConfig(cmd *cobra.Command) (bench.Config, error) {
	flags := cmd.Flags()
	cfg := bench.DefaultConfig()

	path, err := flags.GetString("config")
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if cfg, err = bench.LoadConfig(path, cfg); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("N") {
		if cfg.Keys, err = flags.GetInt("N"); err != nil {
			return cfg, errors.Wrap(err, "flag N")
		}
	}
	if flags.Changed("min") {
		if cfg.Min, err = flags.GetInt("min"); err != nil {
			return cfg, errors.Wrap(err, "flag min")
		}
	}
	if flags.Changed("max") {
		if cfg.Max, err = flags.GetInt("max"); err != nil {
			return cfg, errors.Wrap(err, "flag max")
		}
	}
	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetInt64("seed"); err != nil {
			return cfg, errors.Wrap(err, "flag seed")
		}
	}
	if flags.Changed("rounds") {
		if cfg.Rounds, err = flags.GetInt("rounds"); err != nil {
			return cfg, errors.Wrap(err, "flag rounds")
		}
	}
	if flags.Changed("sorted") {
		if cfg.Sorted, err = flags.GetBool("sorted"); err != nil {
			return cfg, errors.Wrap(err, "flag sorted")
		}
	}
	return cfg, nil
}

func addBenchFlags(cmd *cobra.Command) {
	def := bench.DefaultConfig()
	cmd.Flags().IntP("N", "N", def.Keys, "number of keys in the tree")
	cmd.Flags().Int("min", def.Min, "smallest random key")
	cmd.Flags().Int("max", def.Max, "largest random key")
	cmd.Flags().Int64("seed", def.Seed, "random seed (0 uses the clock)")
	cmd.Flags().Int("rounds", def.Rounds, "number of rounds")
	cmd.Flags().Bool("sorted", def.Sorted, "insert keys in ascending order")
	cmd.Flags().StringP("config", "c", "", "ini file with a [bench] section")
}

func init() {
	addBenchFlags(benchCmd)
	rootCmd.AddCommand(benchCmd)
}
