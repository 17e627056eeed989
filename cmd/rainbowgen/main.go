// Copyright (c) 2025 adofm
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:adofm/rainbow-crack/cmd/rainbowgen/main.go

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/adofm/rainbow-crack/charsets"
	"github.com/adofm/rainbow-crack/rainbow"
)

func main() {
	app := &cli.App{
		Name:      "rainbowgen",
		Usage:     "generate a rainbow table",
		ArgsUsage: "algorithm charset min_length max_length chain_length number_of_chains output_file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config/config.yaml",
				Usage: "charsets configuration file",
			},
			&cli.StringFlag{
				Name:  "audit",
				Value: "hash.txt",
				Usage: "file receiving one '<password> -> <tail>' line per chain (empty disables)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "fixed RNG seed for a reproducible table",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "parallel chain generation workers",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "overwrite the output file without asking",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func positiveInt(c *cli.Context, i int, name string) (int, error) {
	v, err := strconv.Atoi(c.Args().Get(i))
	if err != nil {
		return 0, cli.Exit(fmt.Sprintf("%s must be an integer, got %q", name, c.Args().Get(i)), 1)
	}
	if v < 1 {
		return 0, cli.Exit(fmt.Sprintf("%s must be at least 1, got %d", name, v), 1)
	}
	return v, nil
}

func newLogger() (*zap.Logger, string, error) {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join("logs",
		fmt.Sprintf("rainbowgen_%s.log", time.Now().Format("20060102_150405")))
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stdout", path}
	log, err := cfg.Build()
	return log, path, err
}

func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	}
	fmt.Printf("File %s already exists. Overwrite? (y/n): ", path)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

func run(c *cli.Context) error {
	if c.NArg() != 7 {
		cli.ShowAppHelp(c)
		return cli.Exit("expected 7 positional arguments", 1)
	}

	algorithm, err := rainbow.ParseAlgorithm(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg, err := charsets.Load(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	alphabet, err := cfg.Lookup(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	minLength, err := positiveInt(c, 2, "min_length")
	if err != nil {
		return err
	}
	maxLength, err := positiveInt(c, 3, "max_length")
	if err != nil {
		return err
	}
	if minLength > maxLength {
		return cli.Exit("min_length cannot be greater than max_length", 1)
	}
	chainLength, err := positiveInt(c, 4, "chain_length")
	if err != nil {
		return err
	}
	numChains, err := positiveInt(c, 5, "number_of_chains")
	if err != nil {
		return err
	}
	output := c.Args().Get(6)

	log, logPath, err := newLogger()
	if err != nil {
		return cli.Exit(fmt.Sprintf("set up logging: %v", err), 1)
	}
	defer log.Sync()
	log.Info("log file", zap.String("path", logPath))

	params := rainbow.Params{
		Algorithm:   algorithm,
		Charset:     alphabet,
		MinLength:   minLength,
		MaxLength:   maxLength,
		ChainLength: chainLength,
		NumChains:   numChains,
	}
	log.Info("configuration",
		zap.Stringer("algorithm", algorithm),
		zap.String("charset", c.Args().Get(1)),
		zap.Int("min_length", minLength),
		zap.Int("max_length", maxLength),
		zap.Int("chain_length", chainLength),
		zap.Int("number_of_chains", numChains),
		zap.String("output_file", output))

	avgLength := (minLength + maxLength) / 2
	estimate := datasize.ByteSize(numChains * (avgLength + algorithm.Size()))
	log.Info("estimated memory usage", zap.String("size", estimate.HumanReadable()))

	if !c.Bool("yes") {
		ok, err := confirmOverwrite(output)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if !ok {
			log.Info("operation cancelled by user")
			return nil
		}
	}

	opts := []rainbow.Option{
		rainbow.WithLogger(log),
		rainbow.WithWorkers(c.Int("workers")),
	}
	if c.IsSet("seed") {
		opts = append(opts, rainbow.WithSeed(c.Uint64("seed")))
	}
	if auditPath := c.String("audit"); auditPath != "" {
		audit, err := os.OpenFile(auditPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return cli.Exit(fmt.Sprintf("open audit file: %v", err), 1)
		}
		defer audit.Close()
		opts = append(opts, rainbow.WithAudit(audit))
	}

	table, err := rainbow.New(params, opts...)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	collisions, err := table.Generate(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("generation failed: %v", err), 1)
	}
	log.Info("generation complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("collisions", collisions),
		zap.Int("stored_chains", table.Len()))

	if err := table.Save(output); err != nil {
		return cli.Exit(fmt.Sprintf("save table: %v", err), 1)
	}
	log.Info("rainbow table saved", zap.String("path", output))
	return nil
}
