// Package solpool - pool snapshots.
//
// A snapshot is a zstd-compressed gob stream carrying the full pool state:
// sense, capacity, sort flag, age counter, and entries. Loading rebuilds a
// pool that continues exactly where the saved one stopped (same ranking,
// same next age), so a later run can start with a warm pool.
package solpool

import (
	"encoding/gob"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/mipheur/mip"
)

// snapshotMagic identifies pool snapshot streams.
const snapshotMagic = "mipheur-pool"

// snapshotVersion is bumped on incompatible layout changes.
const snapshotVersion = 1

// poolSnapshot is the gob payload. Field order is free (gob is name-based),
// but every field must survive round-trips unchanged.
type poolSnapshot struct {
	Magic   string
	Version int
	Sense   int
	MaxSize int
	Sorted  bool
	NextAge uint64
	Dim     int
	Entries []Entry
}

// Save writes the pool to w as a compressed snapshot.
func (p *Pool) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create snapshot compressor: %w", err)
	}

	snap := poolSnapshot{
		Magic:   snapshotMagic,
		Version: snapshotVersion,
		Sense:   int(p.sense),
		MaxSize: p.maxSize,
		Sorted:  p.sorted,
		NextAge: p.nextAge,
		Dim:     p.dim,
		Entries: p.entries,
	}
	if err = gob.NewEncoder(zw).Encode(&snap); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode pool snapshot: %w", err)
	}

	return zw.Close()
}

// Load reads a snapshot written by Save and rebuilds the pool.
//
// Errors: ErrBadSnapshot for foreign or inconsistent streams,
// ErrSnapshotVersion for incompatible versions, plus decompression errors.
func Load(r io.Reader) (*Pool, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot decompressor: %w", err)
	}
	defer zr.Close()

	var snap poolSnapshot
	if err = gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode pool snapshot: %w", err)
	}

	if snap.Magic != snapshotMagic {
		return nil, ErrBadSnapshot
	}
	if snap.Version != snapshotVersion {
		return nil, ErrSnapshotVersion
	}
	if snap.MaxSize < 1 || len(snap.Entries) > snap.MaxSize {
		return nil, ErrBadSnapshot
	}
	if snap.Sense != int(mip.Minimize) && snap.Sense != int(mip.Maximize) {
		return nil, ErrBadSnapshot
	}

	// Entry consistency: uniform dimension matching the pinned one, and no
	// age at or above the next free age (ages are handed out downward).
	var i int
	for i = 0; i < len(snap.Entries); i++ {
		if len(snap.Entries[i].Solution) == 0 || len(snap.Entries[i].Solution) != snap.Dim {
			return nil, ErrBadSnapshot
		}
		if snap.Entries[i].Age <= snap.NextAge {
			return nil, ErrBadSnapshot
		}
	}
	if snap.Dim == 0 && len(snap.Entries) > 0 {
		return nil, ErrBadSnapshot
	}
	if snap.NextAge == math.MaxUint64 && len(snap.Entries) > 0 {
		return nil, ErrBadSnapshot
	}

	entries := make([]Entry, 0, snap.MaxSize)
	entries = append(entries, snap.Entries...)

	return &Pool{
		sense:   mip.Sense(snap.Sense),
		maxSize: snap.MaxSize,
		sorted:  snap.Sorted,
		nextAge: snap.NextAge,
		dim:     snap.Dim,
		entries: entries,
	}, nil
}

// SaveFile writes a snapshot to path, truncating any existing file.
func (p *Pool) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err = p.Save(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	return Load(f)
}
