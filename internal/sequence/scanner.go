package sequence

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrDirectoryUnavailable is returned when the sequence directory cannot be read.
var ErrDirectoryUnavailable = errors.New("sequence directory unavailable")

// imageSuffixes are matched against the lowercased entry name. The match is
// on the bare suffix, so "0001.PNG" and "0001png" both qualify.
var imageSuffixes = []string{"png", "jpg", "jpeg"}

// Scan lists dir and returns the paths of its image files sorted by byte order.
// Paths are dir + "/" + name with the name's original case.
// If dir cannot be read, Scan returns an empty slice and an error wrapping
// ErrDirectoryUnavailable.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	prefix := dir
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImageName(e.Name()) {
			continue
		}
		paths = append(paths, prefix+e.Name())
	}

	sort.Strings(paths)
	return paths, nil
}

// IsImageName reports whether name ends in png, jpg or jpeg, ignoring case.
// Names shorter than a suffix simply do not match it.
func IsImageName(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
