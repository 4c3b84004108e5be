package classmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `index,mid,display_name
0,/m/09x0r,Speech
1,/m/05zppz,"Male speech, man speaking"
2,/m/02zsn,"Female speech, woman speaking"
`

func TestParse(t *testing.T) {
	names, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Speech", "Male speech, man speaking", "Female speech, woman speaking"}
	if len(names) != len(want) {
		t.Fatalf("len = %d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"header only", "index,mid,display_name\n"},
		{"wrong field count", "index,mid,display_name\n0,/m/1\n"},
		{"bad index", "index,mid,display_name\nzero,/m/1,Speech\n"},
		{"out of order", "index,mid,display_name\n1,/m/1,Speech\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yamnet_class_map.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	names, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 3 {
		t.Fatalf("len = %d, want 3", len(names))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); !os.IsNotExist(err) {
		t.Errorf("Load(missing) err = %v, want not-exist", err)
	}
}

func TestIndex(t *testing.T) {
	idx := Index([]string{"Speech", "Shout", "Speech"})
	if idx["Speech"] != 0 || idx["Shout"] != 1 {
		t.Errorf("Index = %v", idx)
	}
	if _, ok := idx["Yell"]; ok {
		t.Error("unexpected entry for Yell")
	}
}
