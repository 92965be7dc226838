// Package orientation rewrites the ImageOrientationPatient tag of a
// batch of DICOM files. It exists to repair series converted from NIfTI
// whose direction cosines came out with flipped Y components.
package orientation

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// Cosines is an ImageOrientationPatient value: the row direction cosine
// triplet followed by the column triplet.
type Cosines [6]float64

// Strings encodes the cosines as DICOM DS strings. Values are rounded
// to 8 decimals to stay within the 16-byte DS limit.
func (c Cosines) Strings() []string {
	out := make([]string, len(c))
	for i, v := range c {
		out[i] = strconv.FormatFloat(v, 'f', 8, 64)
	}
	return out
}

// ParseCosines parses a comma-separated sextet, as accepted on the
// command line.
func ParseCosines(s string) (Cosines, error) {
	var c Cosines
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return c, fmt.Errorf("orientation needs 6 comma-separated values, got %d", len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return c, fmt.Errorf("orientation component %d: %w", i+1, err)
		}
		c[i] = v
	}
	return c, nil
}

// Patch reads every .dcm file in inputDir, replaces its
// ImageOrientationPatient with the given cosines, and writes the
// patched copy under the same name in outputDir. It returns the number
// of files written; any parse or write failure aborts the batch.
func Patch(inputDir, outputDir string, cosines Cosines) (int, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("reading input directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".dcm") {
			continue
		}

		src := filepath.Join(inputDir, e.Name())
		ds, err := dicom.ParseFile(src, nil)
		if err != nil {
			return count, fmt.Errorf("parsing %s: %w", src, err)
		}

		if err := setOrientation(&ds, cosines); err != nil {
			return count, fmt.Errorf("patching %s: %w", src, err)
		}

		dst := filepath.Join(outputDir, e.Name())
		if err := writeDataset(dst, ds); err != nil {
			return count, fmt.Errorf("writing %s: %w", dst, err)
		}
		count++
	}

	return count, nil
}

// setOrientation replaces the dataset's ImageOrientationPatient element,
// appending one if the dataset has none.
func setOrientation(ds *dicom.Dataset, cosines Cosines) error {
	e, err := dicom.NewElement(tag.ImageOrientationPatient, cosines.Strings())
	if err != nil {
		return err
	}

	for i, el := range ds.Elements {
		if el.Tag == tag.ImageOrientationPatient {
			ds.Elements[i] = e
			return nil
		}
	}
	ds.Elements = append(ds.Elements, e)
	return nil
}

// writeDataset writes a DICOM dataset to a file
func writeDataset(path string, ds dicom.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return dicom.Write(f, ds)
}
