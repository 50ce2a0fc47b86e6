package main

import (
	"encoding/json/jsontext"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/attr-format/attr"
	"github.com/attr-format/attr/decode"
	"github.com/attr-format/attr/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	Plain bool `cli:"name=plain desc='never color, even on a tty'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type SortConfig struct {
	*MainConfig

	Key   string
	Order attr.Order

	Sort *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Keys  []string
	Query string
	Expr  string

	Filter *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.useColor(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Plain {
		return false
	}
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// loadRecords reads a JSON array of record objects from a file, or from
// stdin when arg is "-".
func loadRecords(arg string) ([]attr.Record, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	recs, err := decode.InferSlice(jsontext.Value(d))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return recs, nil
}

func writeRecords(w io.Writer, recs []attr.Record) error {
	d, err := encode.JSONSlice(recs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}

func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
