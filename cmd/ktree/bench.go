// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/gaissmai/ktree"
)

// benchResult is printed as JSON by the bench command.
type benchResult struct {
	Size     int           `json:"size"`
	Height   int           `json:"height"`
	Build    time.Duration `json:"build_ns"`
	Lookups  int           `json:"lookups"`
	Hits     int           `json:"hits"`
	Lookup   time.Duration `json:"lookup_ns"`
	Traverse time.Duration `json:"traverse_ns"`
}

func runBench(cctx *cli.Context) error {
	size, lookups := cctx.Int("size"), cctx.Int("lookups")
	if size < 0 || lookups < 0 {
		return fmt.Errorf("size and lookups must not be negative")
	}

	seed := cctx.Uint64("seed")
	prng := rand.New(rand.NewPCG(seed, seed))

	res, err := bench(prng, cctx.Int("k"), size, lookups)
	if err != nil {
		return err
	}

	zap.L().Info("bench finished",
		zap.Int("size", res.Size),
		zap.Int("height", res.Height),
		zap.Duration("build", res.Build),
		zap.Duration("lookup", res.Lookup),
		zap.Duration("traverse", res.Traverse))

	return printJSON(cctx, res)
}

// bench builds a tree of random ints, each slot is a hole with
// probability 1/8 and slots below holes stay empty.
// Then it looks up random indices.
func bench(prng *rand.Rand, k, size, lookups int) (benchResult, error) {
	if k < 2 {
		return benchResult{}, fmt.Errorf("%w: k=%d", ktree.ErrInvalidBranchingFactor, k)
	}

	items := make([]ktree.Item[int], size)
	for i := range items {
		if i > 0 && !items[(i-1)/k].Ok {
			continue
		}
		if prng.IntN(8) != 0 {
			items[i] = ktree.Some(prng.Int())
		}
	}

	start := time.Now()
	tree, err := ktree.New(items, k, ktree.WithLogger(zap.L().Named("bench")))
	if err != nil {
		return benchResult{}, err
	}

	res := benchResult{
		Size:    tree.Size(),
		Height:  tree.Height(),
		Build:   time.Since(start),
		Lookups: lookups,
	}

	start = time.Now()
	for range lookups {
		if _, err := tree.Get(prng.IntN(size + 1)); err == nil {
			res.Hits++
		}
	}
	res.Lookup = time.Since(start)

	start = time.Now()
	n := 0
	for range tree.PreOrder() {
		n++
	}
	res.Traverse = time.Since(start)

	if n != tree.Size() {
		return res, fmt.Errorf("pre-order visited %d of %d values", n, tree.Size())
	}
	return res, nil
}
