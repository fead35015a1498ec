package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	content := "the\nAnd\n\n  of  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	for _, word := range []string{"the", "AND", "of"} {
		if !list.Has(word) {
			t.Errorf("Has(%q) = false, want true", word)
		}
	}
	if list.Has("climate") {
		t.Error("Has(climate) = true, want false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	list, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("Load() error = %v, want graceful nil", err)
	}
	if list != nil {
		t.Errorf("list = %v, want nil", list)
	}
	if list.Has("anything") {
		t.Error("nil list must contain nothing")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	list, err := Load("")
	if err != nil || list != nil {
		t.Fatalf("Load(\"\") = %v, %v; want nil, nil", list, err)
	}
}
