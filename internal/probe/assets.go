package probe

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/zeebo/blake3"
)

// DefaultTimeout bounds a probe when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// indexName matches assets.IndexName; duplicated to keep probe free of
// the HTTP-facing packages.
const indexName = "index.html"

// ErrNoIndex reports an asset tree without index.html.
var ErrNoIndex = errors.New("asset root has no index.html")

// Config controls a single probe execution.
type Config struct {
	// Root is the asset root directory.
	Root string

	// Timeout bounds the whole probe. If zero, DefaultTimeout is used.
	Timeout time.Duration
}

// AssetSummary describes the asset tree as observed by one probe.
type AssetSummary struct {
	Root         string
	IndexPresent bool
	Files        int
	Bytes        int64
	Digest       string
	LatenciesMs  map[string]int64
	Warnings     []string
	LastChecked  time.Time
}

type assetFile struct {
	name string
	size int64
}

// ProbeAssets walks cfg.Root and summarizes it. See the package
// documentation for the sequence and error model.
func ProbeAssets(ctx context.Context, cfg Config) (summary AssetSummary, err error) {
	var (
		warns     []string
		latencies = make(map[string]int64, 2)
	)
	summary.Root = cfg.Root
	defer func() {
		summary.LatenciesMs = latencies
		summary.Warnings = warns
		summary.LastChecked = time.Now()
	}()

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	root, err := os.OpenRoot(cfg.Root)
	if err != nil {
		warns = append(warns, "open asset root failed: "+err.Error())
		return summary, fmt.Errorf("open asset root: %w", err)
	}
	defer root.Close()

	walkStart := time.Now()
	var files []assetFile
	err = fs.WalkDir(root.FS(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			warns = append(warns, "skipped non-regular entry: "+name)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, assetFile{name: name, size: info.Size()})
		summary.Bytes += info.Size()
		if name == indexName {
			summary.IndexPresent = true
		}
		return nil
	})
	latencies["walk"] = millisSince(walkStart)
	summary.Files = len(files)
	if err != nil {
		warns = append(warns, "walk failed: "+err.Error())
		return summary, fmt.Errorf("walk asset root: %w", err)
	}
	if len(files) == 0 {
		warns = append(warns, "asset root is empty")
	}

	hashStart := time.Now()
	digest, err := digestFiles(ctx, root, files)
	latencies["hash"] = millisSince(hashStart)
	if err != nil {
		warns = append(warns, "hash failed: "+err.Error())
		return summary, fmt.Errorf("hash asset root: %w", err)
	}
	summary.Digest = digest

	if !summary.IndexPresent {
		return summary, ErrNoIndex
	}
	return summary, nil
}

// digestFiles hashes files in name order. Each record is the name, a NUL,
// the 8-byte big-endian size and the file bytes.
func digestFiles(ctx context.Context, root *os.Root, files []assetFile) (string, error) {
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	h := blake3.New()
	var size [8]byte
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		_, _ = io.WriteString(h, f.name)
		_, _ = h.Write([]byte{0})
		binary.BigEndian.PutUint64(size[:], uint64(f.size))
		_, _ = h.Write(size[:])

		if err := hashFile(h, root, f); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashFile(w io.Writer, root *os.Root, f assetFile) error {
	file, err := root.Open(filepath.FromSlash(f.name))
	if err != nil {
		return err
	}
	defer file.Close()

	n, err := io.Copy(w, file)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.name, err)
	}
	if n != f.size {
		return fmt.Errorf("read %s: size changed during probe (%d != %d)", f.name, n, f.size)
	}
	return nil
}

// millisSince returns the elapsed milliseconds since t0, clamped at zero.
func millisSince(t0 time.Time) int64 {
	diff := time.Since(t0)
	if diff < 0 {
		return 0
	}
	return diff.Milliseconds()
}
