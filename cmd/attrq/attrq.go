package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/attr-format/attr"
	"github.com/attr-format/attr/encode"
	"github.com/attr-format/attr/eval"
)

func attrqMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func runSort(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		cfg.Sort.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Key == "" {
		return fmt.Errorf("%w: sort requires -k", cli.ErrUsage)
	}
	for _, arg := range fileArgs(args) {
		recs, err := loadRecords(arg)
		if err != nil {
			return err
		}
		if err := writeRecords(cc.Out, attr.SortedBy(cfg.Key, cfg.Order, recs)); err != nil {
			return err
		}
	}
	return nil
}

func runFilter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	byKeys := len(cfg.Keys) != 0 || cfg.Query != ""
	if byKeys && cfg.Expr != "" {
		return fmt.Errorf("%w: -e cannot be combined with -k/-q", cli.ErrUsage)
	}
	if !byKeys && cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -k and -q, or -e", cli.ErrUsage)
	}
	for _, arg := range fileArgs(args) {
		recs, err := loadRecords(arg)
		if err != nil {
			return err
		}
		if byKeys {
			recs = attr.FilteredBy(cfg.Keys, cfg.Query, recs)
		} else {
			recs, err = eval.FilterExpr(cfg.Expr, recs)
			if err != nil {
				return err
			}
		}
		if err := writeRecords(cc.Out, recs); err != nil {
			return err
		}
	}
	return nil
}

func runGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an attribute path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range fileArgs(args[1:]) {
		recs, err := loadRecords(arg)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			s, ok := attr.RenderAttr(attr.GetByPath(path, rec))
			if !ok {
				// misses print as blank lines to keep output
				// aligned with input records
				s = ""
			}
			if _, err := fmt.Fprintln(cc.Out, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func runView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		recs, err := loadRecords(arg)
		if err != nil {
			return err
		}
		for i, rec := range recs {
			if i != 0 {
				if _, err := fmt.Fprintln(cc.Out, "---"); err != nil {
					return err
				}
			}
			if err := encode.Encode(rec, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
	}
	return nil
}
