package font

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("ttf"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenCacheScans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Roboto-bold italic.ttf")
	writeFile(t, dir, "Open Sans-regular normal.ttf")

	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	path, ok := c.Lookup("Roboto", Variant{Weight: Bold, Style: Italic})
	if !ok {
		t.Fatal("Roboto bold italic not indexed")
	}
	if filepath.Base(path) != "Roboto-bold italic.ttf" {
		t.Errorf("path = %q", path)
	}

	// A family name containing '-' splits on the last separator.
	writeFile(t, dir, "PT-Serif-bold normal.ttf")
	c, err = OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if _, ok := c.Lookup("PT-Serif", Variant{Weight: Bold}); !ok {
		t.Error("PT-Serif bold not indexed")
	}
}

func TestOpenCacheSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Roboto-bold normal.ttf")
	writeFile(t, dir, "noseparator.ttf")
	writeFile(t, dir, "Roboto-chunky normal.ttf")
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (malformed entries skipped)", c.Len())
	}
}

func TestOpenCacheMissingDir(t *testing.T) {
	if _, err := OpenCache(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("OpenCache on a missing directory succeeded, want error")
	}
}

func TestCacheInsert(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}

	v := Variant{Weight: Bold, Style: Italic}
	path, err := c.Insert("Roboto", v, []byte("payload"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if filepath.Base(path) != "Roboto-bold italic.ttf" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading inserted file: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("file contents = %q", data)
	}

	if _, ok := c.Lookup("Roboto", v); !ok {
		t.Error("inserted variant not in index")
	}

	// The filename round-trips through a fresh scan.
	c2, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if _, ok := c2.Lookup("Roboto", v); !ok {
		t.Error("inserted variant not found after rescan")
	}
}

func TestCacheInsertFailureLeavesIndexClean(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	if _, err := c.Insert("Roboto", Variant{}, []byte("x")); err == nil {
		t.Fatal("Insert into a removed directory succeeded, want error")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed insert, want 0", c.Len())
	}
}
