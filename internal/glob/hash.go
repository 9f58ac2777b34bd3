package glob

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// HashFiles computes a BLAKE3 digest over the regular files of a result and
// returns it hex encoded. It returns "" when there is nothing to hash.
//
// For each file, in result order, the digest covers the length-prefixed
// slash-separated path relative to Root followed by the length-prefixed
// content, so renaming a file changes the digest as much as editing it.
// Directories are skipped, as are files removed since resolution.
func HashFiles(result *Result) (string, error) {
	hasher := blake3.New()
	hashed := 0

	for _, path := range result.Files {
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
			continue
		}
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("hashing %s: %w", path, err)
		}

		rel, err := filepath.Rel(result.Root, path)
		if err != nil {
			rel = path
		}
		writeLengthPrefixed(hasher, []byte(filepath.ToSlash(rel)))
		writeLengthPrefixed(hasher, content)
		hashed++
	}

	if hashed == 0 {
		return "", nil
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func writeLengthPrefixed(h *blake3.Hasher, b []byte) {
	var prefix [8]byte
	binary.BigEndian.PutUint64(prefix[:], uint64(len(b)))
	_, _ = h.Write(prefix[:])
	_, _ = h.Write(b)
}
