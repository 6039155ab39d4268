package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/huzife/cyaml"
	"github.com/huzife/cyaml/node"
	"github.com/huzife/cyaml/token"
)

// tokenLines scans one input to its (KIND, value?) tuple lines.
func tokenLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := token.NewScanner(f)
	var lines []string
	for {
		tok, err := s.Next()
		if err != nil {
			return lines, err
		}
		if tok.Type == token.TNone {
			return lines, nil
		}
		lines = append(lines, tok.Info())
	}
}

func tokens(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no input files", cli.ErrUsage)
	}
	for _, arg := range args {
		lines, err := tokenLines(arg)
		for _, ln := range lines {
			fmt.Fprintln(cc.Out, ln)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func check(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: check needs <file.in> <file.out>", cli.ErrUsage)
	}
	lines, err := tokenLines(args[0])
	if err != nil {
		return err
	}
	golden, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	got := strings.Join(lines, "\n") + "\n"
	want := string(golden)
	if got == want {
		fmt.Fprintf(cc.Out, "%s: ok\n", args[0])
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(want, got, false)
	fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	return fmt.Errorf("%s: token stream differs from %s", args[0], args[1])
}

func roundtrip(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no input files", cli.ErrUsage)
	}
	for _, arg := range args {
		docs, err := cyaml.LoadFileAll(arg)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			text, err := cyaml.DumpString(doc)
			if err != nil {
				return err
			}
			back, err := cyaml.LoadString(text)
			if err != nil {
				return fmt.Errorf("%s: reparse: %w", arg, err)
			}
			if !node.Equal(doc, back) {
				return fmt.Errorf("%s: roundtrip mismatch", arg)
			}
			out, err := cyaml.DumpString(doc, cfg.encOpts()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cc.Out, out)
		}
	}
	return nil
}
