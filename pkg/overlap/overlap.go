// Package overlap implements the lesion/sub-ROI overlap quantifier: it
// scores how strongly a patient's lesion mask intersects each map of a
// reference atlas library.
//
// The pipeline follows four steps:
//  1. Enumerate the reference maps sorted by file name
//  2. Load the lesion volume and binarize it (non-zero voxels become 1)
//  3. Per map, compute the elementwise product with the mask and take
//     the 90th percentile of its non-zero values (0 if there are none)
//  4. Assemble a one-row table keyed by patient ID and map name
package overlap

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"lesionquant/internal/models"
	"lesionquant/pkg/atlas"
	"lesionquant/pkg/report"
	"lesionquant/pkg/volume"
)

// DefaultPercentile is the percentile of the non-zero intersection
// values reported as the importance score.
const DefaultPercentile = 90.0

// Params configures a quantifier run.
type Params struct {
	// LesionPath is the patient lesion volume file
	LesionPath string

	// Library is the reference map library to score against
	Library *atlas.Library

	// Percentile selects the reported intersection statistic; zero
	// means DefaultPercentile
	Percentile float64
}

// Result holds the scores of one completed run.
type Result struct {
	// PatientID is derived from the lesion file name
	PatientID string

	// MapNames are the score column names, in ascending file-name order
	MapNames []string

	// Scores holds one importance score per map, aligned with MapNames
	Scores []float64
}

// ShapeMismatchError reports a reference map whose voxel grid does not
// match the lesion's. Multiplying mismatched grids would produce a
// meaningless result, so the run aborts instead.
type ShapeMismatchError struct {
	// Map is the display name of the offending reference map
	Map string

	// Got is the map's grid, Want the lesion's
	Got, Want models.Grid
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("reference map %s has grid %s, lesion has %s", e.Map, e.Got, e.Want)
}

// Quantifier runs the overlap scoring pipeline.
type Quantifier struct {
	params *Params
}

// NewQuantifier creates a quantifier with the provided parameters.
func NewQuantifier(params *Params) *Quantifier {
	return &Quantifier{params: params}
}

// Run scores the lesion against every map in the library. Maps are
// processed strictly sequentially; each map volume is released before
// the next is loaded. Any load or shape failure aborts the run.
func (q *Quantifier) Run() (*Result, error) {
	maps, err := q.params.Library.List()
	if err != nil {
		return nil, err
	}

	lesion, err := volume.Load(q.params.LesionPath)
	if err != nil {
		return nil, fmt.Errorf("loading lesion: %w", err)
	}
	lesion.Binarize()

	pct := q.params.Percentile
	if pct == 0 {
		pct = DefaultPercentile
	}

	result := &Result{
		PatientID: models.PatientID(q.params.LesionPath),
		MapNames:  make([]string, len(maps)),
		Scores:    make([]float64, len(maps)),
	}

	for i, m := range maps {
		result.MapNames[i] = m.Name

		ref, err := volume.Load(m.Path)
		if err != nil {
			return nil, fmt.Errorf("loading reference map %s: %w", m.Name, err)
		}
		if !ref.SameGrid(lesion) {
			return nil, &ShapeMismatchError{Map: m.Name, Got: ref.Grid, Want: lesion.Grid}
		}

		result.Scores[i] = score(lesion, ref, pct)
	}

	return result, nil
}

// Table converts a result into a single-row report table.
func (r *Result) Table() (*report.Table, error) {
	t := report.NewTable(r.MapNames)
	if err := t.Append(r.PatientID, r.Scores); err != nil {
		return nil, err
	}
	return t, nil
}

// score computes the importance of one reference map: the pct-th
// percentile of the non-zero values of the elementwise product between
// the binarized lesion mask and the map. The map's data is consumed as
// the product buffer.
func score(lesion, ref *volume.Volume, pct float64) float64 {
	floats.Mul(ref.Data, lesion.Data)

	nonZero := ref.Data[:0]
	for _, v := range ref.Data {
		if v != 0 {
			nonZero = append(nonZero, v)
		}
	}
	return percentile(nonZero, pct)
}

// percentile returns the p-th percentile of values using linear
// interpolation between the two nearest ranks, or 0 for an empty input.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	s := append([]float64(nil), values...)
	sort.Float64s(s)

	h := p / 100 * float64(len(s)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return s[lo]
	}
	return s[lo] + (h-float64(lo))*(s[hi]-s[lo])
}
