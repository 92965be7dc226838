package orientation

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

var testCosines = Cosines{0.99951738, -0.03057701, 0.00548300, 0.02789130, 0.96104014, 0.27499804}

func mustNewElement(t tag.Tag, data interface{}) *dicom.Element {
	e, err := dicom.NewElement(t, data)
	if err != nil {
		panic(err)
	}
	return e
}

// writeTestDicom writes a minimal explicit-little-endian DICOM file,
// optionally with an existing ImageOrientationPatient element.
func writeTestDicom(t *testing.T, path string, withOrientation bool) {
	t.Helper()

	elements := []*dicom.Element{
		mustNewElement(tag.MediaStorageSOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{"1.2.276.0.7230010.3.1.4.1"}),
		mustNewElement(tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
		mustNewElement(tag.SOPClassUID, []string{"1.2.840.10008.5.1.4.1.1.4"}),
		mustNewElement(tag.SOPInstanceUID, []string{"1.2.276.0.7230010.3.1.4.1"}),
		mustNewElement(tag.Modality, []string{"MR"}),
		mustNewElement(tag.PatientID, []string{"P011"}),
	}
	if withOrientation {
		elements = append(elements, mustNewElement(tag.ImageOrientationPatient,
			[]string{"1.00000000", "0.00000000", "0.00000000", "0.00000000", "-1.00000000", "0.00000000"}))
	}

	if err := writeDataset(path, dicom.Dataset{Elements: elements}); err != nil {
		t.Fatalf("Failed to write test DICOM: %v", err)
	}
}

func readOrientation(t *testing.T, path string) []string {
	t.Helper()

	ds, err := dicom.ParseFile(path, nil)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	e, err := ds.FindElementByTag(tag.ImageOrientationPatient)
	if err != nil {
		t.Fatalf("No ImageOrientationPatient in %s: %v", path, err)
	}
	values, ok := e.Value.GetValue().([]string)
	if !ok {
		t.Fatalf("ImageOrientationPatient has unexpected value type %T", e.Value.GetValue())
	}
	return values
}

func TestPatchReplacesOrientation(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "fixed")

	writeTestDicom(t, filepath.Join(inDir, "slice001.dcm"), true)
	writeTestDicom(t, filepath.Join(inDir, "slice002.dcm"), true)
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatalf("Failed to create decoy file: %v", err)
	}

	count, err := Patch(inDir, outDir, testCosines)
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("Patched %d files, want 2", count)
	}

	for _, name := range []string{"slice001.dcm", "slice002.dcm"} {
		got := readOrientation(t, filepath.Join(outDir, name))
		if !reflect.DeepEqual(got, testCosines.Strings()) {
			t.Errorf("%s orientation %v, want %v", name, got, testCosines.Strings())
		}
	}
}

func TestPatchInsertsMissingOrientation(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "fixed")

	writeTestDicom(t, filepath.Join(inDir, "slice001.dcm"), false)

	if _, err := Patch(inDir, outDir, testCosines); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	got := readOrientation(t, filepath.Join(outDir, "slice001.dcm"))
	if !reflect.DeepEqual(got, testCosines.Strings()) {
		t.Errorf("Orientation %v, want %v", got, testCosines.Strings())
	}
}

func TestPatchMissingInputDir(t *testing.T) {
	if _, err := Patch(filepath.Join(t.TempDir(), "absent"), t.TempDir(), testCosines); err == nil {
		t.Fatal("Patch with a missing input directory should fail")
	}
}

func TestParseCosines(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := ParseCosines("1, 0, 0, 0, -1, 0")
		if err != nil {
			t.Fatalf("ParseCosines failed: %v", err)
		}
		want := Cosines{1, 0, 0, 0, -1, 0}
		if got != want {
			t.Fatalf("Got %v, want %v", got, want)
		}
	})

	t.Run("WrongCount", func(t *testing.T) {
		if _, err := ParseCosines("1,0,0"); err == nil {
			t.Fatal("Three components should fail")
		}
	})

	t.Run("NotANumber", func(t *testing.T) {
		if _, err := ParseCosines("1,0,0,0,up,0"); err == nil {
			t.Fatal("Non-numeric component should fail")
		}
	})
}

func TestCosinesStringsFitDS(t *testing.T) {
	for _, s := range testCosines.Strings() {
		if len(s) > 16 {
			t.Errorf("DS value %q exceeds 16 bytes", s)
		}
	}
}
