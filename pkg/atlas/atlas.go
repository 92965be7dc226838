// Package atlas enumerates a read-only directory of pre-registered
// anatomical reference maps and derives their display names.
package atlas

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPattern matches the compressed NIfTI files a map library holds.
const DefaultPattern = "*.gz"

// DefaultSuffix is the file-name suffix the APSS subcortical maps carry;
// stripping it yields the anatomical region name.
const DefaultSuffix = "_union_randomise_1mm.nii.gz"

// Map is one reference map in the library.
type Map struct {
	// Path is the full path to the map file
	Path string

	// Name is the display name used as the score column header
	Name string
}

// Library describes a fixed, externally managed directory of reference
// map volumes sharing one voxel grid.
type Library struct {
	// Dir is the directory containing the map files
	Dir string

	// Pattern is the file-name glob selecting map files
	Pattern string

	// Suffix is stripped from file names to derive display names
	Suffix string
}

// NewLibrary returns a Library over dir using the default pattern and
// suffix for any zero-valued option.
func NewLibrary(dir, pattern, suffix string) *Library {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Library{Dir: dir, Pattern: pattern, Suffix: suffix}
}

// List enumerates the library's maps sorted ascending by file name,
// independent of file-system enumeration order.
func (l *Library) List() ([]Map, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading map library %s: %w", l.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(l.Pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("map pattern %q: %w", l.Pattern, err)
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	maps := make([]Map, len(names))
	for i, name := range names {
		maps[i] = Map{
			Path: filepath.Join(l.Dir, name),
			Name: DisplayName(name, l.Suffix),
		}
	}
	return maps, nil
}

// DisplayName strips any path components and the library suffix from a
// map file name; "Thalamus_union_randomise_1mm.nii.gz" becomes
// "Thalamus".
func DisplayName(name, suffix string) string {
	return strings.TrimSuffix(filepath.Base(name), suffix)
}
