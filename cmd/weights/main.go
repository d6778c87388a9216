// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command weights queries an edge table stored in a chosen layout.
//
//	weights --file table.yaml --storage sparse --from 0 --to 2 --matrix
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"code.hybscloud.com/closure/internal/table"
	"code.hybscloud.com/closure/weights"
	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	file     string
	storage  string
	from, to int
	matrix   bool
	logLevel string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("weights", flag.ContinueOnError)
	fs.StringVarP(&cfg.file, "file", "f", "", "edge table in YAML")
	fs.StringVarP(&cfg.storage, "storage", "s", "", "storage layout: jagged, sparse, dense or uniform (default from table)")
	fs.IntVar(&cfg.from, "from", 0, "source node")
	fs.IntVar(&cfg.to, "to", 0, "target node")
	fs.BoolVarP(&cfg.matrix, "matrix", "m", false, "print the full weight matrix")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.file == "" {
		return cfg, errors.New("--file is required")
	}
	return cfg, nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}

func run(cfg config, log *zap.Logger, out io.Writer) error {
	tab, err := table.Load(cfg.file)
	if err != nil {
		return err
	}
	log.Debug("loaded table",
		zap.String("file", cfg.file),
		zap.Int("nodes", tab.Nodes),
		zap.Int("edges", len(tab.Edges)),
	)

	var kind weights.Kind
	if cfg.storage != "" {
		if kind, err = weights.ParseKind(cfg.storage); err != nil {
			return err
		}
	}
	p, err := tab.Provider(kind)
	if err != nil {
		return err
	}
	log.Debug("built provider", zap.Stringer("provider", p))

	if w, err := p.Lookup(cfg.from, cfg.to); err != nil {
		log.Info("no direct edge", zap.Int("from", cfg.from), zap.Int("to", cfg.to))
		fmt.Fprintf(out, "weight %d->%d: none\n", cfg.from, cfg.to)
	} else {
		fmt.Fprintf(out, "weight %d->%d: %d\n", cfg.from, cfg.to, *w)
	}

	if path, dist, ok := table.ShortestPath(&p, cfg.from, cfg.to); ok {
		fmt.Fprintf(out, "path %s: %d\n", joinPath(path), dist)
	} else {
		fmt.Fprintf(out, "path %d->%d: unreachable\n", cfg.from, cfg.to)
	}

	if cfg.matrix {
		writeMatrix(out, &p)
	}
	return nil
}

func joinPath(path []int) string {
	s := make([]string, len(path))
	for i, v := range path {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, "->")
}

func writeMatrix(out io.Writer, p *weights.Provider[int64]) {
	for _, row := range p.Matrix() {
		cells := make([]string, len(row))
		for j, o := range row {
			cells[j] = "-"
			o.WhenSome(func(w int64) { cells[j] = fmt.Sprint(w) })
		}
		fmt.Fprintln(out, strings.Join(cells, "\t"))
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(cfg.logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error("query failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
