package fileutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

func TestWriteFileAtomic_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"text":   []byte("hello atomic"),
		"empty":  {},
		"binary": {0x00, 0xff, 0x10, 0x00, 0x7f},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := filepath.Join(dir, "state.json")

			if err := WriteFileAtomic(path, data, nil); err != nil {
				t.Fatalf("WriteFileAtomic() error: %v", err)
			}
			if got := readFile(t, path); !bytes.Equal([]byte(got), data) {
				t.Errorf("content = %q, want %q", got, data)
			}
			if names := dirNames(t, dir); len(names) != 1 {
				t.Errorf("temp file left behind: %v", names)
			}
		})
	}
}

func TestWriteFileAtomic_ReplacesExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := createTestFile(t, dir, "state.json", "a much longer previous payload")

	if err := WriteFileAtomic(path, []byte("new"), &WriteOptions{Sync: true}); err != nil {
		t.Fatalf("WriteFileAtomic() error: %v", err)
	}
	if got := readFile(t, path); got != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileAtomic_Mode(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	tests := map[string]struct {
		opts *WriteOptions
		want os.FileMode
	}{
		"default":  {opts: nil, want: DefaultFileMode},
		"explicit": {opts: &WriteOptions{Mode: func() *os.FileMode { m := os.FileMode(0o600); return &m }()}, want: 0o600},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "out")

			if err := WriteFileAtomic(path, []byte("x"), tc.opts); err != nil {
				t.Fatalf("WriteFileAtomic() error: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			// The umask may clear bits but never adds any.
			if got := info.Mode().Perm(); got&^tc.want != 0 {
				t.Errorf("mode = %o, has bits outside %o", got, tc.want)
			}
		})
	}
}

func TestWriteFileAtomic_EmptyPath(t *testing.T) {
	t.Parallel()

	if err := WriteFileAtomic("", []byte("x"), nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("error = %v, want %v", err, ErrEmptyPath)
	}
}

func TestWriteFileAtomic_MissingParent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := WriteFileAtomic(path, []byte("x"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
	if Exists(path) {
		t.Error("target must not exist after a failed write")
	}
}

func TestWriteFileAtomic_RenameFailureRemovesTemp(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A non-empty directory at the target makes the final rename fail.
	target := filepath.Join(dir, "target")
	if err := os.MkdirAll(filepath.Join(target, "child"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := WriteFileAtomic(target, []byte("x"), nil); err == nil {
		t.Fatal("expected rename onto a non-empty directory to fail")
	}

	for _, name := range dirNames(t, dir) {
		if strings.HasPrefix(name, "target-") {
			t.Errorf("temp file %s was not cleaned up", name)
		}
	}
	requireDir(t, filepath.Join(target, "child"))
}

func TestWriteFileAtomic_TempNameShape(t *testing.T) {
	t.Parallel()
	dst := filepath.Join("some", "dir", "file.txt")

	got := tempSiblingPath(dst)
	if filepath.Dir(got) != filepath.Dir(dst) {
		t.Errorf("temp dir = %s, want %s", filepath.Dir(got), filepath.Dir(dst))
	}
	base := filepath.Base(got)
	if !strings.HasPrefix(base, "file.txt-") {
		t.Errorf("temp base %q lacks target prefix", base)
	}
	if suffix := strings.TrimPrefix(base, "file.txt-"); len(suffix) != 36 {
		t.Errorf("suffix %q is not a UUID", suffix)
	}
	if tempSiblingPath(dst) == got {
		t.Error("temp names must differ between calls")
	}
}

func TestWriteFileAtomic_ConcurrentReaderNeverSeesPartialContent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "snapshot.bin")

	const size = 256 << 10
	payloads := [][]byte{
		bytes.Repeat([]byte{'a'}, size),
		bytes.Repeat([]byte{'b'}, size),
	}
	if err := WriteFileAtomic(path, payloads[0], nil); err != nil {
		t.Fatalf("initial write: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			got, err := os.ReadFile(path) //nolint:gosec // G304: test path
			if err != nil {
				t.Errorf("reader: %v", err)
				return
			}
			if !bytes.Equal(got, payloads[0]) && !bytes.Equal(got, payloads[1]) {
				t.Errorf("reader observed partial content: %d bytes", len(got))
				return
			}
		}
	}()

	for i := range 50 {
		if err := WriteFileAtomic(path, payloads[i%2], nil); err != nil {
			t.Errorf("write %d: %v", i, err)
			break
		}
	}
	close(done)
	wg.Wait()
}
