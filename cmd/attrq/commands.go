package main

import (
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/attr-format/attr"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "attrq").
		WithSynopsis("attrq [opts] command [opts] [files]").
		WithDescription("attrq sorts, filters, and views JSON files of attribute records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return attrqMain(cfg, cc, args)
		}).
		WithSubs(
			SortCommand(cfg),
			FilterCommand(cfg),
			GetCommand(cfg),
			ViewCommand(cfg))
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg, Order: attr.Ascending}
	cmd := cli.NewCommand("sort").
		WithAliases("s").
		WithSynopsis("sort -k path [-o asc|dsc] [files]").
		WithDescription("Sort records by the rendering of a dotted attribute path.").
		WithOpts(
			&cli.Opt{
				Name:        "k",
				Description: "attribute path to sort by",
				Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
					cfg.Key = a
					return nil, nil
				}, "(path)"),
			},
			&cli.Opt{
				Name:        "o",
				Aliases:     []string{"order"},
				Description: "sort order: asc sorts ascending, anything else descending",
				Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
					cfg.Order = attr.Order(a)
					return nil, nil
				}, "(order)"),
			}).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSort(cfg, cc, args)
		})
	cfg.Sort = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithSynopsis("filter -k path[,path...] -q query [files]\nfilter -e expr [files]").
		WithDescription("Keep records where any path's rendering contains the query,\ncase-insensitively, or where an expression holds.").
		WithOpts(
			&cli.Opt{
				Name:        "k",
				Description: "comma-separated attribute paths to match against",
				Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
					cfg.Keys = strings.Split(a, ",")
					return nil, nil
				}, "(paths)"),
			},
			&cli.Opt{
				Name:        "q",
				Description: "substring to search for",
				Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
					cfg.Query = a
					return nil, nil
				}, "(query)"),
			},
			&cli.Opt{
				Name:        "e",
				Description: "boolean expression over record attributes",
				Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
					cfg.Expr = a
					return nil, nil
				}, "(expr)"),
			}).
		WithRun(func(cc *cli.Context, args []string) error {
			return runFilter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get path [files]").
		WithDescription("Print the rendering of an attribute path for each record.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("Print records in display form, in color on a tty.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
