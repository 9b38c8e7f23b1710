// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command ktree inspects K-ary trees given in flat array form.
//
//	ktree --k 2 dump _ _ A B N null null
//	ktree decode --path 001011011 _ _ A B N null null
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gaissmai/ktree"
)

const nullArg = "null"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "ktree"
	app.Usage = "inspect K-ary trees given in flat array form, null marks a hole"
	app.ArgsUsage = "<item> ..."

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "k",
			Usage:   "branching factor",
			Value:   2,
			EnvVars: []string{"KTREE_K"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{"KTREE_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "read the items from a single JSON array argument",
		},
	}

	app.Before = setupLogging
	app.After = func(cctx *cli.Context) error {
		_ = zap.L().Sync()
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:   "dump",
			Usage:  "print the tree one level per line",
			Action: runDump,
		},
		{
			Name:   "array",
			Usage:  "print the flat array form as JSON",
			Action: runArray,
		},
		{
			Name:   "traverse",
			Usage:  "print the values in traversal order",
			Action: runTraverse,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "order",
					Usage: "level, pre or post",
					Value: "level",
				},
			},
		},
		{
			Name:   "get",
			Usage:  "print the value at an index",
			Action: runGet,
			Flags:  []cli.Flag{indexFlag()},
		},
		{
			Name:   "subtree",
			Usage:  "print the flat array form below an index as JSON",
			Action: runSubtree,
			Flags:  []cli.Flag{indexFlag()},
		},
		{
			Name:   "mirror",
			Usage:  "print the values level by level, right to left",
			Action: runMirror,
		},
		{
			Name:   "decode",
			Usage:  "decode a path of child offsets in a code tree",
			Action: runDecode,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Usage:    "digits, one child offset per step",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "blank",
					Usage: "value of the inner nodes",
					Value: ktree.DefaultBlank,
				},
			},
		},
		{
			Name:   "set",
			Usage:  "set the value at an index and print the tree",
			Action: runSet,
			Flags: []cli.Flag{
				indexFlag(),
				&cli.StringFlag{
					Name:     "value",
					Usage:    "new value",
					Required: true,
				},
			},
		},
		{
			Name:   "delete",
			Usage:  "clear the value at an index and print the tree",
			Action: runDelete,
			Flags:  []cli.Flag{indexFlag()},
		},
		{
			Name:   "bench",
			Usage:  "build a random tree and time lookups and traversals",
			Action: runBench,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "size",
					Usage: "number of items",
					Value: 10_000,
				},
				&cli.IntFlag{
					Name:  "lookups",
					Usage: "number of random Get calls",
					Value: 1_000_000,
				},
				&cli.Uint64Flag{
					Name:  "seed",
					Usage: "seed of the random generator",
					Value: 42,
				},
			},
		},
	}

	return app
}

func indexFlag() cli.Flag {
	return &cli.IntFlag{
		Name:     "index",
		Aliases:  []string{"i"},
		Usage:    "index in the flat array form",
		Required: true,
	}
}

// setupLogging installs the global zap logger, the trees log through it.
func setupLogging(cctx *cli.Context) error {
	level, err := zapcore.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// parseItems converts the arguments, null becomes a hole.
func parseItems(args []string) []ktree.Item[string] {
	items := make([]ktree.Item[string], len(args))
	for i, arg := range args {
		if arg != nullArg {
			items[i] = ktree.Some(arg)
		}
	}
	return items
}

func loadTree(cctx *cli.Context) (*ktree.Tree[string], error) {
	args := cctx.Args().Slice()
	opts := []ktree.Option{ktree.WithLogger(zap.L().Named("tree"))}

	if cctx.Bool("json") {
		if len(args) != 1 {
			return nil, fmt.Errorf("--json expects exactly one argument, got %d", len(args))
		}
		return ktree.FromJSON[string]([]byte(args[0]), cctx.Int("k"), opts...)
	}

	return ktree.New(parseItems(args), cctx.Int("k"), opts...)
}

// printTree writes the level-by-level rendering, an empty root
// prints an empty line.
func printTree(cctx *cli.Context, tree *ktree.Tree[string]) error {
	w := cctx.App.Writer
	if err := tree.Fprint(w); err != nil && !errors.Is(err, ktree.ErrNotFound) {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printJSON(cctx *cli.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cctx.App.Writer, string(data))
	return err
}

func runDump(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	return printTree(cctx, tree)
}

func runArray(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	return printJSON(cctx, tree)
}

func runTraverse(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	var out string
	switch order := cctx.String("order"); order {
	case "level":
		out = tree.LevelOrderString()
	case "pre":
		out = tree.PreOrderString()
	case "post":
		out = tree.PostOrderString()
	default:
		return fmt.Errorf("unknown order %q, want level, pre or post", order)
	}

	_, err = fmt.Fprintln(cctx.App.Writer, out)
	return err
}

func runGet(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	val, err := tree.Get(cctx.Int("index"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cctx.App.Writer, val)
	return err
}

func runSubtree(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	items, err := tree.Subtree(cctx.Int("index"))
	if err != nil {
		return err
	}
	return printJSON(cctx, items)
}

func runMirror(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cctx.App.Writer, strings.Join(tree.Mirror(), " "))
	return err
}

func runDecode(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	word, err := ktree.DecodeBlank(tree, cctx.String("path"), cctx.String("blank"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cctx.App.Writer, word)
	return err
}

func runSet(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	if err := tree.Set(cctx.Int("index"), cctx.String("value")); err != nil {
		return err
	}
	return printTree(cctx, tree)
}

func runDelete(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	if err := tree.Delete(cctx.Int("index")); err != nil {
		return err
	}
	return printTree(cctx, tree)
}
