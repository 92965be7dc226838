package radar

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// DefaultOrder is the preferred clockwise category order around the
// chart, starting at the top.
var DefaultOrder = []string{
	"Semantic", "Phonological", "Speech Arrest", "Motor",
	"Movement Arrest", "Sensorial", "Visual", "Spatial Perception",
	"Mentalizing", "Anomia",
}

// LoadSeries reads an importance table as written by lesionquant and
// returns the first data row as category→value pairs. Column names are
// cleaned with CleanName; index, template and unnamed columns are
// skipped, as are cells that do not parse as numbers.
func LoadSeries(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s has no data row", path)
	}

	header, row := records[0], records[1]
	values := make(map[string]float64)
	for i, col := range header {
		if i >= len(row) || skipColumn(col) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			continue
		}
		values[CleanName(col)] = v
	}
	return values, nil
}

// skipColumn reports whether a header cell is not a real category: the
// empty row-label column, numeric indices, and unnamed or template
// columns from upstream tooling.
func skipColumn(col string) bool {
	if col == "" {
		return true
	}
	lower := strings.ToLower(col)
	if strings.Contains(lower, "template") || strings.Contains(lower, "unnamed") {
		return true
	}
	for _, r := range col {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CleanName turns a column name into a display label: the ".nii.gz"
// extension is dropped, underscores become spaces, and each word is
// capitalized.
func CleanName(col string) string {
	s := strings.ReplaceAll(col, ".nii.gz", "")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// OrderCategories arranges the given categories by the preferred order,
// matching each preferred name exactly first and then by
// case-insensitive substring in either direction. Categories left over
// are appended in sorted order.
func OrderCategories(categories []string, preferred []string) []string {
	remaining := append([]string(nil), categories...)
	ordered := make([]string, 0, len(categories))

	for _, want := range preferred {
		if i := matchCategory(want, remaining); i >= 0 {
			ordered = append(ordered, remaining[i])
			remaining = append(remaining[:i], remaining[i+1:]...)
		}
	}

	sort.Strings(remaining)
	return append(ordered, remaining...)
}

// matchCategory returns the index of the category matching want, or -1.
func matchCategory(want string, categories []string) int {
	for i, c := range categories {
		if c == want {
			return i
		}
	}
	wantLower := strings.ToLower(want)
	for i, c := range categories {
		cLower := strings.ToLower(c)
		if strings.Contains(cLower, wantLower) || strings.Contains(wantLower, cLower) {
			return i
		}
	}
	return -1
}

// CommonCategories returns the categories present in both series.
func CommonCategories(a, b map[string]float64) []string {
	var common []string
	for k := range a {
		if _, ok := b[k]; ok {
			common = append(common, k)
		}
	}
	sort.Strings(common)
	return common
}
