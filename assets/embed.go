// Package assets embeds the published sample input of each day.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed inputs/*.txt
var FS embed.FS

// Sample returns the sample input for day. The error wraps fs.ErrNotExist
// when no sample is embedded.
func Sample(day int) (string, error) {
	b, err := FS.ReadFile(fmt.Sprintf("inputs/day%d.txt", day))
	if err != nil {
		return "", fmt.Errorf("sample for day %d: %w", day, err)
	}
	return string(b), nil
}

// Days lists the days that have an embedded sample.
func Days() ([]int, error) {
	entries, err := fs.ReadDir(FS, "inputs")
	if err != nil {
		return nil, err
	}
	var out []int
	for _, e := range entries {
		var d int
		if _, err := fmt.Sscanf(e.Name(), "day%d.txt", &d); err == nil {
			out = append(out, d)
		}
	}
	return out, nil
}
