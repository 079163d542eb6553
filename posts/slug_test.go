package posts

import (
	"errors"
	"testing"
)

func TestFileID(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"001.md", "001"},
		{"001", "001"},
		{"README.md", "readme"},
		{"042.md", "042"},
	}

	for _, tc := range cases {
		if got := FileID(tc.filename, ".md"); got != tc.want {
			t.Fatalf("FileID(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestFileID_NoopOnStrippedID(t *testing.T) {
	id := FileID("001.md", ".md")
	if again := FileID(id, ".md"); again != id {
		t.Fatalf("FileID not a no-op on stripped id: %q -> %q", id, again)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		filename string
		title    string
		want     string
	}{
		{"001.md", "Hello World", "001-hello-world"},
		{"002.md", "Zero  Allocation   Tricks", "002-zero-allocation-tricks"},
		{"003.md", "Go 1.22 Release Notes", "003-go-1-22-release-notes"},
		{"004.md", "!!!", "004-"},
		{"005.md", "", "005-"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.filename, ".md", tc.title); got != tc.want {
			t.Fatalf("Slugify(%q, %q) = %q, want %q", tc.filename, tc.title, got, tc.want)
		}
	}
}

func TestTitleFragment_NoSlugSafeCharacters(t *testing.T) {
	for _, title := range []string{"", "!!!", "¡¿?!", "---", " \t "} {
		if got := TitleFragment(title); got != "" {
			t.Fatalf("TitleFragment(%q) = %q, want empty fragment", title, got)
		}
	}
	if got := TitleFragment("Hello!"); got != "hello-" {
		t.Fatalf("TitleFragment(%q) = %q, want %q", "Hello!", got, "hello-")
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	first := Slugify("010.md", ".md", "Some Long Title Here")
	for i := 0; i < 5; i++ {
		if got := Slugify("010.md", ".md", "Some Long Title Here"); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}

func TestSlugFilename_RoundTrip(t *testing.T) {
	filenames := []string{"001.md", "042.md", "1234.md"}
	titles := []string{"Hello World", "a-b-c", "", "!!!", "Title With UPPER case"}

	for _, filename := range filenames {
		for _, title := range titles {
			slug := Slugify(filename, ".md", title)
			got, err := SlugFilename(slug, ".md")
			if err != nil {
				t.Fatalf("SlugFilename(%q): %v", slug, err)
			}
			if got != filename {
				t.Fatalf("round trip %q -> %q -> %q, want %q", filename, slug, got, filename)
			}
		}
	}
}

func TestSlugFilename_IgnoresTitlePortion(t *testing.T) {
	got, err := SlugFilename("001-a-completely-different-title", ".md")
	if err != nil {
		t.Fatalf("SlugFilename: %v", err)
	}
	if got != "001.md" {
		t.Fatalf("expected 001.md, got %q", got)
	}
}

func TestSlugFilename_RejectsInvalidID(t *testing.T) {
	for _, slug := range []string{"", "-leading", "abc-hello", "0x1-hello", "..-etc"} {
		if _, err := SlugFilename(slug, ".md"); !errors.Is(err, ErrSlugInvalid) {
			t.Fatalf("SlugFilename(%q): expected ErrSlugInvalid, got %v", slug, err)
		}
	}
}

func TestValidID(t *testing.T) {
	for id, want := range map[string]bool{
		"001":   true,
		"1":     true,
		"":      false,
		"01a":   false,
		"1-2":   false,
		"Hello": false,
	} {
		if got := ValidID(id); got != want {
			t.Fatalf("ValidID(%q) = %v, want %v", id, got, want)
		}
	}
}
