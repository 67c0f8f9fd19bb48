// Copyright (c) 2024-2026 The fastrand developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/krand/fastrand"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Count   int    `short:"n" long:"count" description:"number of values to generate"`
	Type    string `short:"t" long:"type" description:"value type (one of: u32, u64, int, float, bool, token, shuffle)"`
	Low     int64  `long:"low" description:"inclusive low bound for int values"`
	High    int64  `long:"high" description:"exclusive high bound for int values"`
	Length  int    `long:"length" description:"length of generated tokens"`
	Seed    string `short:"s" long:"seed" description:"seed the generator deterministically"`
	Verbose bool   `short:"v" long:"verbose" description:"log library internals to stderr"`
}

func main() {
	cfg := config{
		Count:  1,
		Type:   "u64",
		Length: 32,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"
	_, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Verbose {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("RAND")
		logger.SetLevel(slog.LevelDebug)
		fastrand.UseLogger(logger)
	}

	var rng *fastrand.PRNG
	if cfg.Seed != "" {
		seed, err := strconv.ParseUint(cfg.Seed, 0, 64)
		if err != nil {
			fatalf("invalid seed %q: %v\n", cfg.Seed, err)
		}
		rng = fastrand.NewSeeded(seed)
	} else {
		rng = fastrand.New()
	}

	if cfg.Count < 1 {
		fatalf("count must be positive\n")
	}

	switch cfg.Type {
	case "u32":
		for i := 0; i < cfg.Count; i++ {
			fmt.Println(rng.Uint32())
		}
	case "u64":
		for i := 0; i < cfg.Count; i++ {
			fmt.Println(rng.Uint64())
		}
	case "int":
		if cfg.Low >= cfg.High {
			fatalf("int values require --low < --high\n")
		}
		for i := 0; i < cfg.Count; i++ {
			fmt.Println(rng.Int64Range(cfg.Low, cfg.High))
		}
	case "float":
		for i := 0; i < cfg.Count; i++ {
			fmt.Println(rng.Float64())
		}
	case "bool":
		for i := 0; i < cfg.Count; i++ {
			fmt.Println(rng.Bool())
		}
	case "token":
		if cfg.Length < 1 {
			fatalf("token length must be positive\n")
		}
		var sb strings.Builder
		for i := 0; i < cfg.Count; i++ {
			sb.Reset()
			for j := 0; j < cfg.Length; j++ {
				sb.WriteByte(rng.Alphanumeric())
			}
			fmt.Println(sb.String())
		}
	case "shuffle":
		// Shuffle lines read from stdin.
		var lines []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fatalf("read stdin: %v\n", err)
		}
		rng.Shuffle(len(lines), func(i, j int) {
			lines[i], lines[j] = lines[j], lines[i]
		})
		w := bufio.NewWriter(os.Stdout)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		w.Flush()
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q\n", cfg.Type)
		usage(parser)
	}
}
