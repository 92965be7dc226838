// Package models defines the shared domain types used across the
// lesionquant tools.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Grid describes the voxel dimensions of a 3D volume.
type Grid struct {
	// Nx, Ny, Nz are the number of voxels along each axis
	Nx, Ny, Nz int
}

// Count returns the total number of voxels in the grid.
func (g Grid) Count() int {
	return g.Nx * g.Ny * g.Nz
}

// Equal reports whether two grids have identical dimensions.
// Volumes on unequal grids must never be combined voxel-wise.
func (g Grid) Equal(o Grid) bool {
	return g.Nx == o.Nx && g.Ny == o.Ny && g.Nz == o.Nz
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%dx%d", g.Nx, g.Ny, g.Nz)
}

// PatientID derives a patient identifier from a lesion file path.
// The identifier is the portion of the base file name before the first
// underscore, so "P003_lesion.nii.gz" yields "P003". A name without an
// underscore is returned unchanged.
func PatientID(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "_"); i >= 0 {
		return base[:i]
	}
	return base
}
