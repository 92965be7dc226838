package models

import "testing"

func TestPatientID(t *testing.T) {
	cases := []struct{ path, want string }{
		{"P003_lesion.nii.gz", "P003"},
		{"/data/lesions/P011_pre_T1.nii.gz", "P011"},
		{"P042.nii.gz", "P042.nii.gz"},
		{"sub-07_ses-1_mask.nii", "sub-07"},
	}

	for _, c := range cases {
		if got := PatientID(c.path); got != c.want {
			t.Errorf("PatientID(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestGrid(t *testing.T) {
	g := Grid{Nx: 182, Ny: 218, Nz: 182}

	if g.Count() != 182*218*182 {
		t.Errorf("Count = %d", g.Count())
	}
	if g.String() != "182x218x182" {
		t.Errorf("String = %q", g.String())
	}
	if !g.Equal(Grid{Nx: 182, Ny: 218, Nz: 182}) {
		t.Error("Equal grids reported as different")
	}
	if g.Equal(Grid{Nx: 182, Ny: 182, Nz: 218}) {
		t.Error("Permuted grid reported as equal")
	}
}
