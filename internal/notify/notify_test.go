package notify

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcher_FiresAfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv")
	if err := os.WriteFile(path, []byte("PersonID;SpouseID;FatherID;MotherID;Person\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	fw := NewFileWatcher(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	fw.debounce = 50 * time.Millisecond

	if err := fw.Start(); err != nil {
		t.Fatal(err)
	}
	defer fw.Stop()

	if err := os.WriteFile(path, []byte("PersonID;SpouseID;FatherID;MotherID;Person\n1;;;;Anna\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not invoked after dataset write")
	}
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "family.csv")
	if err := os.WriteFile(path, []byte("data\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	fw := NewFileWatcher(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	fw.debounce = 50 * time.Millisecond

	if err := fw.Start(); err != nil {
		t.Fatal(err)
	}
	defer fw.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestFileWatcher_RenameOverSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "family.csv")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 1)
	fw := NewFileWatcher(path, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	fw.debounce = 50 * time.Millisecond

	if err := fw.Start(); err != nil {
		t.Fatal(err)
	}
	defer fw.Stop()

	tmp := filepath.Join(dir, ".family.csv.tmp")
	if err := os.WriteFile(tmp, []byte("new\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not invoked after rename-over save")
	}
}

func TestFileWatcher_StopIsClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv")
	if err := os.WriteFile(path, []byte("data\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw := NewFileWatcher(path, func() {})
	if err := fw.Start(); err != nil {
		t.Fatal(err)
	}
	fw.Stop() // must not hang or panic
}
