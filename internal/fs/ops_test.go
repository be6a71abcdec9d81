package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateFileRefusesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "taken.txt")
	writeFileT(t, path)

	err := CreateFile(path)
	if err == nil {
		t.Fatal("expected error creating over an existing file")
	}
	if !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestCreateDirAndFile(t *testing.T) {
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "made")
	if err := CreateDir(dir); err != nil {
		t.Fatalf("CreateDir failed: %v", err)
	}
	file := filepath.Join(dir, "made.txt")
	if err := CreateFile(file); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("created file missing: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("created file should be empty, got %d bytes", info.Size())
	}
}

func TestRenameRefusesExistingTarget(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	writeFileT(t, src)
	writeFileT(t, dst)

	err := Rename(src, dst)
	if err == nil {
		t.Fatal("expected rename onto existing target to fail")
	}
	if !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
	if !Exists(src) {
		t.Error("source must survive a refused rename")
	}
}

func TestRenameMovesFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "old.txt")
	dst := filepath.Join(tmpDir, "new.txt")
	writeFileT(t, src)

	if err := Rename(src, dst); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if Exists(src) || !Exists(dst) {
		t.Error("rename did not move the file")
	}
}

func TestDeleteRemovesDirectoryRecursively(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "victim")
	mkdirT(t, dir)
	writeFileT(t, filepath.Join(dir, "one.txt"))
	mkdirT(t, filepath.Join(dir, "nested"))
	writeFileT(t, filepath.Join(dir, "nested", "two.txt"))

	if err := Delete(dir); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if Exists(dir) {
		t.Error("directory should be gone")
	}
}

func TestDeleteMissingPath(t *testing.T) {
	tmpDir := t.TempDir()

	err := Delete(filepath.Join(tmpDir, "ghost"))
	if err == nil {
		t.Fatal("expected error deleting missing path")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCopyFilePreservesContent(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o640); err != nil {
		t.Fatalf("failed to create source: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read copy: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("expected payload, got %q", data)
	}
}

func TestCopyDirRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src")
	mkdirT(t, src)
	writeFileT(t, filepath.Join(src, "top.txt"))
	mkdirT(t, filepath.Join(src, "inner"))
	writeFileT(t, filepath.Join(src, "inner", "deep.txt"))

	dst := filepath.Join(tmpDir, "dst")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}

	for _, rel := range []string{"top.txt", filepath.Join("inner", "deep.txt")} {
		if !Exists(filepath.Join(dst, rel)) {
			t.Errorf("missing %s in copy", rel)
		}
	}
	if !Exists(src) {
		t.Error("copy must not remove the source")
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		if err := ValidateName(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("expected ErrInvalidName for %q, got %v", name, err)
		}
	}
	if err := ValidateName("normal.txt"); err != nil {
		t.Errorf("normal.txt should be valid, got %v", err)
	}
}
