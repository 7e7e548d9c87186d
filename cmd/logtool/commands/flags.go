package commands

import (
	"fmt"
	"sort"

	"github.com/dailylog/dailylog/pkg/log"
)

// ParseLevelFlag parses a level string from a command-line flag (case-insensitive).
func ParseLevelFlag(s string) (log.Level, error) {
	level, err := log.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("invalid level: %s (must be info, warning, error, or crash)", s)
	}
	return level, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
