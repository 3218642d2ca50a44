// Package breakpoint maps a viewport width to the carousel layout.
package breakpoint

import (
	"PortfolioBackend/internal/model"
	"fmt"
	"strconv"
	"strings"
)

// DefaultRules are the featured carousel's responsive options.
func DefaultRules() []model.BreakpointRule {
	return []model.BreakpointRule{
		{MaxWidth: 1024, Config: model.DisplayConfig{ItemsVisible: 3, ItemsScrolled: 3}},
		{MaxWidth: 768, Config: model.DisplayConfig{ItemsVisible: 2, ItemsScrolled: 2}},
		{MaxWidth: 560, Config: model.DisplayConfig{ItemsVisible: 1, ItemsScrolled: 1}},
	}
}

// DefaultFallback applies to viewports wider than every rule.
func DefaultFallback() model.DisplayConfig {
	return model.DisplayConfig{ItemsVisible: 3, ItemsScrolled: 1}
}

// Resolve picks the applicable rule (width <= MaxWidth) with the smallest
// MaxWidth, or fallback when none applies. Rule order does not matter.
func Resolve(width int, rules []model.BreakpointRule, fallback model.DisplayConfig) model.DisplayConfig {
	var (
		best  model.BreakpointRule
		found bool
	)
	for _, r := range rules {
		if width > r.MaxWidth {
			continue
		}
		if !found || r.MaxWidth < best.MaxWidth {
			best = r
			found = true
		}
	}
	if !found {
		return fallback
	}
	return best.Config
}

// ValidateRules checks that every MaxWidth is unique and every config valid.
func ValidateRules(rules []model.BreakpointRule) error {
	seen := make(map[int]bool, len(rules))
	for _, r := range rules {
		if seen[r.MaxWidth] {
			return fmt.Errorf("duplicate breakpoint %dpx", r.MaxWidth)
		}
		seen[r.MaxWidth] = true
		if !r.Config.Valid() {
			return fmt.Errorf("breakpoint %dpx: invalid display config %d/%d", r.MaxWidth, r.Config.ItemsVisible, r.Config.ItemsScrolled)
		}
	}
	return nil
}

// ParseRules reads "maxWidth:visible:scrolled" entries separated by commas.
func ParseRules(s string) ([]model.BreakpointRule, error) {
	var rules []model.BreakpointRule
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("breakpoint %q: want maxWidth:visible:scrolled", part)
		}
		w, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(fields[0], "px")))
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: width: %w", part, err)
		}
		c, err := ParseConfig(fields[1] + ":" + fields[2])
		if err != nil {
			return nil, fmt.Errorf("breakpoint %q: %w", part, err)
		}
		rules = append(rules, model.BreakpointRule{MaxWidth: w, Config: c})
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ParseConfig reads "visible:scrolled".
func ParseConfig(s string) (model.DisplayConfig, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 2 {
		return model.DisplayConfig{}, fmt.Errorf("display config %q: want visible:scrolled", s)
	}
	v, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return model.DisplayConfig{}, fmt.Errorf("display config %q: visible: %w", s, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return model.DisplayConfig{}, fmt.Errorf("display config %q: scrolled: %w", s, err)
	}
	c := model.DisplayConfig{ItemsVisible: v, ItemsScrolled: n}
	if !c.Valid() {
		return model.DisplayConfig{}, fmt.Errorf("display config %q: need 0 < scrolled <= visible", s)
	}
	return c, nil
}
