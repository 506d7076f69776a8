package main

import (
	"fmt"
	"strings"

	"pixelbanner/internal/services"
)

// selectTargets picks targets by name in the order given. No names selects all of them.
func selectTargets(all []services.Target, names []string) ([]services.Target, error) {
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]services.Target, len(all))
	known := make([]string, 0, len(all))
	for _, t := range all {
		byName[t.Name] = t
		known = append(known, t.Name)
	}

	selected := make([]services.Target, 0, len(names))
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown target %q, expected one of: %s", name, strings.Join(known, ", "))
		}
		selected = append(selected, t)
	}
	return selected, nil
}
