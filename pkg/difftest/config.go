package difftest

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset returns a named scenario.
func Preset(name string) (Scenario, error) {
	switch name {
	case "", "verification":
		return Verification(), nil
	case "speed":
		return Speed(), nil
	default:
		return Scenario{}, fmt.Errorf("unknown preset %q (want verification or speed)", name)
	}
}

// FromMap overrides fields of base from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values are ignored.
func FromMap(base Scenario, cfg map[string]string) Scenario {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rounds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rounds = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["gods"]; ok {
		c.Gods = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Gods = append(c.Gods, name)
			}
		}
	}
	return c
}
