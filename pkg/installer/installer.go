// Tank Battle
// Copyright (c) 2025 The Tank Battle Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Tank Battle.
//
// Tank Battle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tank Battle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tank Battle.  If not, see <http://www.gnu.org/licenses/>.

// Package installer installs the game's runtime dependencies by trying an
// ordered list of install methods until one of them succeeds.
package installer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	ErrAllTiersFailed = errors.New("all install methods failed")
	ErrNoTiers        = errors.New("no install methods configured")
)

// Strategy is one install method.
type Strategy interface {
	// Name is shown to the operator, e.g. "uv" or "pip3".
	Name() string
	// Available reports whether the method can be attempted on this host.
	Available() bool
	Install(ctx context.Context) error
}

type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeFailed
	OutcomeSucceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	case OutcomeSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Report is the result of a single tier.
type Report struct {
	Err      error
	Strategy string
	Outcome  Outcome
}

// Sequence tries strategies strictly in order, one at a time, and stops at
// the first success. Unavailable strategies are skipped without running.
type Sequence struct {
	// OnAttempt is called right before a strategy runs.
	OnAttempt  func(Strategy)
	OnReport   func(Report)
	Strategies []Strategy
}

// Run returns the strategy that succeeded. When every tier fails or is
// unavailable it returns ErrAllTiersFailed joined with each tier's error.
func (s *Sequence) Run(ctx context.Context) (Strategy, error) {
	if len(s.Strategies) == 0 {
		return nil, ErrNoTiers
	}

	errs := []error{ErrAllTiersFailed}
	for _, st := range s.Strategies {
		if !st.Available() {
			log.Info().Str("method", st.Name()).Msg("install method not available, skipping")
			s.report(Report{Strategy: st.Name(), Outcome: OutcomeSkipped})
			continue
		}

		if s.OnAttempt != nil {
			s.OnAttempt(st)
		}
		log.Info().Str("method", st.Name()).Msg("installing dependencies")

		err := st.Install(ctx)
		if err == nil {
			log.Info().Str("method", st.Name()).Msg("dependencies installed")
			s.report(Report{Strategy: st.Name(), Outcome: OutcomeSucceeded})
			return st, nil
		}

		log.Warn().Err(err).Str("method", st.Name()).Msg("install method failed")
		s.report(Report{Strategy: st.Name(), Outcome: OutcomeFailed, Err: err})
		errs = append(errs, fmt.Errorf("%s: %w", st.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}

	return nil, errors.Join(errs...)
}

func (s *Sequence) report(r Report) {
	if s.OnReport != nil {
		s.OnReport(r)
	}
}
