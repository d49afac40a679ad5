package listfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/protcorr/pkg/listfile"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReadReturnsNamesInOrder(t *testing.T) {
	path := write(t, "3\ngenomeA.fasta\ngenomeB.fasta\ngenomeC.fasta\n")
	names, err := listfile.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"genomeA.fasta", "genomeB.fasta", "genomeC.fasta"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestReadRejectsCountMismatch(t *testing.T) {
	path := write(t, "2\nonly_one.fasta\n")
	if _, err := listfile.Read(path); err == nil {
		t.Fatal("expected an error when the declared count does not match")
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	path := write(t, "not-a-number\n")
	if _, err := listfile.Read(path); err == nil {
		t.Fatal("expected an error for a non-numeric header")
	}
}

func TestReadZeroGenomes(t *testing.T) {
	path := write(t, "0\n")
	names, err := listfile.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("got %v, want empty", names)
	}
}
