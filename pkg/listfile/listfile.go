// Package listfile reads the manifest of genome file names the pipeline
// compares, in the same format this project's original input file used:
// a count on the first line, followed by that many names, one per line.
package listfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Read parses path and returns the genome names it lists, in order.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("listfile: %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, fmt.Errorf("listfile: %s: missing genome count on the first line", path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("listfile: %s: genome count %q is not an integer: %w", path, sc.Text(), err)
	}
	if n < 0 {
		return nil, fmt.Errorf("listfile: %s: negative genome count %d", path, n)
	}

	names := make([]string, 0, n)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("listfile: %s: %w", path, err)
	}
	if len(names) != n {
		return nil, fmt.Errorf("listfile: %s: header declared %d genomes, found %d", path, n, len(names))
	}
	return names, nil
}
