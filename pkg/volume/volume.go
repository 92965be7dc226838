// Package volume loads NIfTI-1 volumes into flat float64 arrays and
// provides the voxel-wise operations the overlap pipeline needs.
package volume

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KyungWonPark/nifti"

	"lesionquant/internal/models"
)

// Volume is a 3D image held in memory as a 1D array in row-major order
// (x fastest, then y, then z).
type Volume struct {
	// Name is the base file name the volume was loaded from
	Name string

	// Grid holds the voxel dimensions
	Grid models.Grid

	// Data is the voxel intensities, indexed by Index(x, y, z)
	Data []float64
}

// Load reads a NIfTI-1 volume from path. Files ending in ".gz" are
// inflated to a temporary file first because the decoder operates on
// plain .nii paths.
func Load(path string) (*Volume, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("volume %s: %w", path, err)
	}

	niiPath := path
	if strings.HasSuffix(path, ".gz") {
		tmp, err := inflate(path)
		if err != nil {
			return nil, fmt.Errorf("inflating %s: %w", path, err)
		}
		defer os.Remove(tmp)
		niiPath = tmp
	}

	var img nifti.Nifti1Image
	img.LoadImage(niiPath, true)

	hdr := img.GetHeader()
	grid := models.Grid{
		Nx: int(hdr.Dim[1]),
		Ny: int(hdr.Dim[2]),
		Nz: int(hdr.Dim[3]),
	}
	if grid.Nx <= 0 || grid.Ny <= 0 || grid.Nz <= 0 {
		return nil, fmt.Errorf("volume %s: invalid grid %s in header", path, grid)
	}

	v := &Volume{
		Name: filepath.Base(path),
		Grid: grid,
		Data: make([]float64, grid.Count()),
	}

	i := 0
	for z := 0; z < grid.Nz; z++ {
		for y := 0; y < grid.Ny; y++ {
			for x := 0; x < grid.Nx; x++ {
				v.Data[i] = float64(img.GetAt(uint32(x), uint32(y), uint32(z), 0))
				i++
			}
		}
	}

	return v, nil
}

// inflate decompresses a gzipped file to a temporary .nii file and
// returns its path. The caller removes the file when done.
func inflate(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	out, err := os.CreateTemp("", "lesionquant-*.nii")
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, zr); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}

	return out.Name(), nil
}

// Index converts voxel coordinates to a position in Data.
func (v *Volume) Index(x, y, z int) int {
	return (z*v.Grid.Ny+y)*v.Grid.Nx + x
}

// At returns the intensity at the given voxel coordinates.
func (v *Volume) At(x, y, z int) float64 {
	return v.Data[v.Index(x, y, z)]
}

// Binarize sets every non-zero voxel to 1 in place. Applying it twice
// yields the same mask as applying it once.
func (v *Volume) Binarize() {
	for i, val := range v.Data {
		if val != 0 {
			v.Data[i] = 1
		}
	}
}

// NonZero returns the number of non-zero voxels.
func (v *Volume) NonZero() int {
	n := 0
	for _, val := range v.Data {
		if val != 0 {
			n++
		}
	}
	return n
}

// SameGrid reports whether two volumes share voxel dimensions.
func (v *Volume) SameGrid(o *Volume) bool {
	return v.Grid.Equal(o.Grid)
}
