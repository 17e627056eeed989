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
// github.com:adofm/rainbow-crack/cmd/rainbowcrack/main.go

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/adofm/rainbow-crack/rainbow"
)

func main() {
	app := &cli.App{
		Name:      "rainbowcrack",
		Usage:     "recover a password from a rainbow table",
		ArgsUsage: "hash_hex table_file",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func printInfo(table *rainbow.Table) {
	params := table.Params()
	info := tablewriter.NewWriter(os.Stdout)
	info.SetHeader([]string{"Parameter", "Value"})
	info.Append([]string{"Algorithm", params.Algorithm.String()})
	info.Append([]string{"Chain length", strconv.Itoa(params.ChainLength)})
	info.Append([]string{"Number of chains", strconv.Itoa(params.NumChains)})
	info.Append([]string{"Stored chains", strconv.Itoa(table.Len())})
	info.Append([]string{"Password length", fmt.Sprintf("%d - %d", params.MinLength, params.MaxLength)})
	info.Append([]string{"Charset size", strconv.Itoa(len(params.Charset))})
	info.Render()
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowAppHelp(c)
		return cli.Exit("expected 2 positional arguments", 1)
	}
	hash := c.Args().Get(0)
	path := c.Args().Get(1)

	fmt.Println("[+] Cracking parameters:")
	fmt.Printf("    Hash to crack: %s\n", hash)
	fmt.Printf("    Rainbow table: %s\n", path)

	if _, err := os.Stat(path); err != nil {
		return cli.Exit(fmt.Sprintf("rainbow table file %q not found", path), 1)
	}

	fmt.Println("\n[+] Loading rainbow table...")
	loadStart := time.Now()
	table, err := rainbow.Load(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("load rainbow table: %v", err), 1)
	}
	fmt.Printf("    Table loaded in %s\n\n", time.Since(loadStart).Round(time.Millisecond))
	printInfo(table)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("\n[+] Starting crack attempt...")
	crackStart := time.Now()
	password, found, err := table.Lookup(ctx, hash)
	elapsed := time.Since(crackStart).Round(time.Millisecond)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if found {
		fmt.Println("\n[+] Success! Password found:")
		fmt.Printf("    Hash:     %s\n", hash)
		fmt.Printf("    Password: %s\n", password)
		fmt.Printf("    Time:     %s\n", elapsed)
		return nil
	}

	fmt.Println("\n[-] No match found")
	fmt.Printf("    Time: %s\n", elapsed)
	fmt.Println("\nPossible reasons for no match:")
	fmt.Println("  - password not in the table's charset")
	fmt.Println("  - password length outside the table's range")
	fmt.Println("  - chain collision dropped the covering chain")
	fmt.Println("  - table coverage insufficient")
	return nil
}
