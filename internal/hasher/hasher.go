// Package hasher computes full-content file digests.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/go-git/go-billy/v5"
)

// ChunkSize is the size of each read fed into the digest
const ChunkSize = 64 * 1024

// Algorithm names a digest function
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	XXHash Algorithm = "xxhash"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// ParseAlgorithm maps a user supplied name to an Algorithm. Empty means SHA256.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha256", "sha-256":
		return SHA256, nil
	case "xxhash", "xxh64", "xxhash64":
		return XXHash, nil
	default:
		return "", fmt.Errorf("hasher: %q: %w", name, ErrUnknownAlgorithm)
	}
}

func (a Algorithm) newHash() hash.Hash {
	if a == XXHash {
		return xxhash.New()
	}
	return sha256.New()
}

// HexLen is the length of a rendered digest
func (a Algorithm) HexLen() int {
	return a.newHash().Size() * 2
}

// Opener is the part of a go-billy filesystem the hasher needs
type Opener interface {
	Open(filename string) (billy.File, error)
}

// Hasher hashes files one at a time, reusing a single read buffer.
// It is not safe for concurrent use.
type Hasher struct {
	fs   Opener
	algo Algorithm
	buf  []byte
}

// New returns a Hasher reading through fs
func New(fs Opener, algo Algorithm) *Hasher {
	if algo == "" {
		algo = SHA256
	}
	return &Hasher{
		fs:   fs,
		algo: algo,
		buf:  make([]byte, ChunkSize),
	}
}

// Algorithm returns the digest function in use
func (h *Hasher) Algorithm() Algorithm {
	return h.algo
}

// HashFile returns the lowercase hex digest of the whole file at path
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("hasher: failed to open '%s': %w", path, err)
	}
	defer f.Close()

	sum, err := h.HashReader(f)
	if err != nil {
		return "", fmt.Errorf("hasher: failed to read '%s': %w", path, err)
	}
	return sum, nil
}

// HashReader consumes r to EOF in ChunkSize reads and returns the hex digest
func (h *Hasher) HashReader(r io.Reader) (string, error) {
	digest := h.algo.newHash()
	for {
		n, err := r.Read(h.buf)
		if n > 0 {
			digest.Write(h.buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
