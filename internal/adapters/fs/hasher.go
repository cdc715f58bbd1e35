package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/podlink/internal/core/domain"
	"go.trai.ch/podlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// missingMarker stands in for the content of a path that does not exist.
const missingMarker = "\x00missing\x00"

// Hasher fingerprints integration reports together with the files they describe.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return digest.Sum64(), nil
}

// ComputeReportHash hashes every field of report except its fingerprint and change flag,
// followed by the given files. Directories are hashed file by file.
func (h *Hasher) ComputeReportHash(report *domain.IntegrationReport, files []string) (string, error) {
	digest := xxhash.New()

	hashReport(report, digest)

	sorted := slices.Clone(files)
	slices.Sort(sorted)
	for _, path := range sorted {
		if err := h.hashPath(path, digest); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func hashReport(r *domain.IntegrationReport, digest *xxhash.Digest) {
	writeFields(digest,
		r.Label,
		r.ProductModuleName,
		r.ProductName,
		r.Platform,
		strconv.FormatBool(r.UsesSwift),
		r.PodsRoot,
		r.Acknowledgements,
		r.CopyResourcesScript,
		r.EmbedFrameworksScript,
	)

	for _, cfg := range r.Configurations {
		writeFields(digest, cfg.Name, string(cfg.Type), cfg.XCConfig)
		for _, key := range slices.Sorted(maps.Keys(cfg.BuildSettings)) {
			writeFields(digest, key, cfg.BuildSettings[key])
		}
		_, _ = digest.Write([]byte{0})
		writeFields(digest, cfg.PodTargets...)
		writeFields(digest, cfg.Specs...)
		writeFields(digest, cfg.Frameworks...)
	}
	_, _ = digest.Write([]byte{0})
}

// writeFields writes each value NUL terminated and closes the section with another NUL.
func writeFields(w io.Writer, values ...string) {
	for _, v := range values {
		_, _ = io.WriteString(w, v)
		_, _ = w.Write([]byte{0})
	}
	_, _ = w.Write([]byte{0})
}

func (h *Hasher) hashPath(path string, digest io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			writeFields(digest, path, missingMarker)
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if !info.IsDir() {
		return h.hashFile(path, digest)
	}

	for file := range h.walker.WalkFiles(path) {
		if err := h.hashFile(file, digest); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, digest io.Writer) error {
	_, _ = io.WriteString(digest, path)
	_, _ = digest.Write([]byte{0})

	sum, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
