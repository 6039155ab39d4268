package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/huzife/cyaml/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.Option {
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		return []encode.Option{encode.WithColors(encode.NewColors())}
	}
	return nil
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "cyaml").
		WithSynopsis("cyaml [opts] command [opts]").
		WithDescription("cyaml is the test harness for the cyaml YAML codec.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cyamlMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			CheckCommand(cfg),
			RoundtripCommand(cfg))
}

func cyamlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("tokens").
		WithAliases("t").
		WithSynopsis("tokens [files]").
		WithDescription("print the token stream of each input as (KIND, value?) lines").
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(mainCfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check <file.in> <file.out>").
		WithDescription("compare the token stream of file.in against the golden file.out").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(mainCfg, cc, args)
		})
}

func RoundtripCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("roundtrip").
		WithAliases("r", "rt").
		WithSynopsis("roundtrip [files]").
		WithDescription("parse, dump, reparse and compare each input structurally").
		WithRun(func(cc *cli.Context, args []string) error {
			return roundtrip(mainCfg, cc, args)
		})
}
