// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ktree

import "go.uber.org/zap"

// Option configures a Tree at construction time.
type Option func(c *config)

type config struct {
	logger *zap.Logger
}

// WithLogger sets the logger for rejected mutations and other
// debug events, the default is the global zap.L().
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.L()}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}
