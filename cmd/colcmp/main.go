package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	konghcl "github.com/alecthomas/kong-hcl/v2"
	"github.com/spirit-labs/colcmp/common"
	"github.com/spirit-labs/colcmp/conf"
	"github.com/spirit-labs/colcmp/errors"
	log "github.com/spirit-labs/colcmp/logger"
	"github.com/spirit-labs/colcmp/query"
	"github.com/spirit-labs/colcmp/segment"
)

type arguments struct {
	Config kong.ConfigFlag `help:"Path to config file" type:"existingfile"`
	Kernel conf.Config     `help:"Kernel configuration" embed:"" prefix:""`
	Log    log.Config      `help:"Configuration for the logger" embed:"" prefix:"log-"`
	Table  []string        `help:"Path to a JSON segment file, may be repeated" type:"existingfile" required:""`
	Expr   string          `help:"Expression to evaluate, non interactively"`
	Shell  bool            `help:"Read expressions from an interactive shell"`
	VI     bool            `help:"Enable VI mode in the shell."`
}

func main() {
	defer common.PanicHandler()
	r := &runner{out: os.Stdout}
	cfg, err := r.loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
	if err := r.run(cfg); err != nil {
		log.Fatalf("%+v\n", err)
	}
}

type runner struct {
	out      io.Writer
	segments []*segment.Segment
	query    *query.Runner
}

func (r *runner) loadConfig(args []string) (*arguments, error) {
	cfg := arguments{}
	parser, err := kong.New(&cfg, kong.Configuration(konghcl.Loader))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	_, err = parser.Parse(args)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := cfg.Log.Configure(); err != nil {
		return nil, errors.WithStack(err)
	}
	cfg.Kernel.ApplyDefaults()
	if err := cfg.Kernel.Validate(); err != nil {
		return nil, err
	}
	if cfg.Expr == "" && !cfg.Shell {
		return nil, errors.New("one of --expr or --shell is required")
	}
	return &cfg, nil
}

func (r *runner) run(cfg *arguments) error {
	if err := r.init(cfg); err != nil {
		return err
	}
	if cfg.Expr != "" {
		return r.evaluate(cfg.Expr)
	}
	return r.shell(cfg.VI)
}

func (r *runner) init(cfg *arguments) error {
	for _, path := range cfg.Table {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.WithStack(err)
		}
		seg, err := segment.LoadJSON(data, cfg.Kernel)
		if err != nil {
			return errors.Errorf("failed to load %s: %v", path, err)
		}
		log.Debugf("loaded segment %s from %s, %d rows", seg.Name, path, seg.RowCount())
		r.segments = append(r.segments, seg)
	}
	q, err := query.NewRunner(cfg.Kernel)
	if err != nil {
		return err
	}
	r.query = q
	return nil
}

func (r *runner) evaluate(expression string) error {
	results, err := r.query.Evaluate(context.Background(), expression, r.segments)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.out, formatResults(expression, results))
	return errors.WithStack(err)
}
