package markdown

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"
)

func TestLoaderList(t *testing.T) {
	loader := NewLoader(fstest.MapFS{
		"001.md":      &fstest.MapFile{Data: []byte("a")},
		"002.md":      &fstest.MapFile{Data: []byte("b")},
		"notes.txt":   &fstest.MapFile{Data: []byte("c")},
		"sub/003.md":  &fstest.MapFile{Data: []byte("d")},
		"sub/004.txt": &fstest.MapFile{Data: []byte("e")},
	})

	names, err := loader.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	sort.Strings(names)
	want := []string{"001.md", "002.md", "notes.txt"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestLoaderList_MissingDirectory(t *testing.T) {
	loader := NewDirLoader(filepath.Join(t.TempDir(), "missing"))

	if _, err := loader.List(context.Background()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoaderRead(t *testing.T) {
	loader := NewLoader(fstest.MapFS{
		"001.md": &fstest.MapFile{Data: []byte("content")},
	})

	data, err := loader.Read(context.Background(), "001.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected content %q", string(data))
	}
}

func TestLoaderRead_MissingFile(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})

	if _, err := loader.Read(context.Background(), "missing.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoaderRead_RejectsPathEscapes(t *testing.T) {
	loader := NewLoader(fstest.MapFS{
		"001.md": &fstest.MapFile{Data: []byte("content")},
	})

	for _, name := range []string{"", "../001.md", "sub/001.md", "./001.md"} {
		if _, err := loader.Read(context.Background(), name); !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("Read(%q): expected fs.ErrNotExist, got %v", name, err)
		}
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	loader := NewLoader(fstest.MapFS{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("List: expected context.Canceled, got %v", err)
	}
	if _, err := loader.Read(ctx, "001.md"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Read: expected context.Canceled, got %v", err)
	}
}
