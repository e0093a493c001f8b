package assets

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeTree creates an asset root under a temp dir with a sibling file
// outside the root, returning the root path.
func writeTree(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "dist")
	files := map[string]string{
		"dist/index.html":     "<!DOCTYPE html><title>Tactical Console</title>",
		"dist/assets/main.js": "console.log('ok')",
		"dist/favicon.svg":    "<svg/>",
		"secret.txt":          "outside",
	}
	for name, body := range files {
		p := filepath.Join(base, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/index.html", "index.html"},
		{"/assets/main.js", "assets/main.js"},
		{"/./favicon.svg", "favicon.svg"},
		{"/assets//main.js", "assets/main.js"},
		{"/assets/", "assets"},
	}
	for _, tc := range cases {
		got, err := Name(tc.in)
		if err != nil {
			t.Fatalf("Name(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Name(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNameRejectsTraversal(t *testing.T) {
	for _, in := range []string{
		"/../secret.txt",
		"/assets/../../secret.txt",
		"/assets/../index.html",
		"/..",
		"/a\\..\\b",
		"/nul\x00byte",
		"relative.html",
	} {
		if _, err := Name(in); !errors.Is(err, ErrNotFound) {
			t.Errorf("Name(%q) error = %v, want ErrNotFound", in, err)
		}
	}
}

func TestOpenServesFiles(t *testing.T) {
	r := NewResolver(writeTree(t))

	for path, wantType := range map[string]string{
		"/":               "text/html; charset=utf-8",
		"/index.html":     "text/html; charset=utf-8",
		"/assets/main.js": "application/javascript; charset=utf-8",
		"/favicon.svg":    "image/svg+xml",
	} {
		a, err := r.Open(path)
		if err != nil {
			t.Fatalf("Open(%q): %v", path, err)
		}
		body, err := io.ReadAll(a)
		a.Close()
		if err != nil {
			t.Fatalf("reading %q: %v", path, err)
		}
		if a.ContentType != wantType {
			t.Errorf("Open(%q).ContentType = %q, want %q", path, a.ContentType, wantType)
		}
		if int64(len(body)) != a.Size {
			t.Errorf("Open(%q): read %d bytes, Size=%d", path, len(body), a.Size)
		}
	}
}

func TestOpenNotFound(t *testing.T) {
	root := writeTree(t)
	if err := os.Symlink(filepath.Join(root, "..", "secret.txt"), filepath.Join(root, "escape.txt")); err != nil {
		t.Fatal(err)
	}
	r := NewResolver(root)

	for _, path := range []string{
		"/nonexistent",
		"/assets",
		"/assets/",
		"/../secret.txt",
		"/escape.txt",
	} {
		a, err := r.Open(path)
		if err == nil {
			a.Close()
			t.Errorf("Open(%q) succeeded, want ErrNotFound", path)
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Open(%q) error = %v, want ErrNotFound", path, err)
		}
	}
}

func TestOpenMissingRoot(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "absent"))
	if _, err := r.Open("/"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Open on missing root error = %v, want ErrNotFound", err)
	}
}

func TestOpenReportsModTime(t *testing.T) {
	root := writeTree(t)
	r := NewResolver(root)
	if r.Root() != root {
		t.Fatalf("Root() = %q, want %q", r.Root(), root)
	}

	mtime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(filepath.Join(root, "favicon.svg"), mtime, mtime); err != nil {
		t.Fatal(err)
	}
	a, err := r.Open("/favicon.svg")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()
	if !a.ModTime.Equal(mtime) {
		t.Fatalf("ModTime = %v, want %v", a.ModTime, mtime)
	}
}
