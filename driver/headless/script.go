// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/errors"
)

// Step is one scripted action, dispatched before the given frame is drawn.
type Step struct {
	Frame  int
	Action anim.Action
}

func (s Step) String() string {
	return fmt.Sprintf("%d:%v", s.Frame, s.Action)
}

// ParseStep parses a step of the form "frame:action" or
// "frame:action=value". Nudges by rotate-left and rotate-right
// use the given nudge step.
func ParseStep(s string, nudge float32) (Step, error) {
	fs, as, ok := strings.Cut(s, ":")
	if !ok {
		return Step{}, fmt.Errorf("headless: script step %q: missing frame", s)
	}
	frame, err := strconv.Atoi(strings.TrimSpace(fs))
	if err != nil || frame < 0 {
		return Step{}, fmt.Errorf("headless: script step %q: bad frame", s)
	}
	name, value, _ := strings.Cut(as, "=")
	a, err := anim.ParseAction(name, value, nudge)
	if err != nil {
		return Step{}, fmt.Errorf("headless: script step %q: %w", s, err)
	}
	return Step{Frame: frame, Action: a}, nil
}

// ParseScript parses all of the given steps, sorted by frame.
// Steps on the same frame keep their order.
func ParseScript(lines []string, nudge float32) ([]Step, error) {
	var errs []error
	steps := make([]Step, 0, len(lines))
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		st, err := ParseStep(ln, nudge)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		steps = append(steps, st)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	slices.SortStableFunc(steps, func(a, b Step) int { return a.Frame - b.Frame })
	return steps, nil
}
