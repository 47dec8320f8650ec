// Package leaderboard persists the local top-10 high-score list.
package leaderboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
)

// storeKey encrypts the score store. This is tamper-resistance for a local
// hiscore file, not security: the key ships with the binary.
const storeKey = "teller-hiscores-v1"

// Keep is how many entries survive pruning.
const Keep = 10

// Entry is one leaderboard row.
type Entry struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// OpenStore opens the game's data store on the given filesystem. The caller
// owns closing it.
func OpenStore(fsys zfilesystem.ReadWriteFileFS) (*zstore.Store, error) {
	s, err := zstore.Open(fsys, []byte(storeKey))
	if err != nil {
		return nil, fmt.Errorf("open score store: %w", err)
	}
	return s, nil
}

// Board manages leaderboard entries in a store collection.
type Board struct {
	entries *zstore.Collection[Entry]
}

// New creates a board over an opened store.
func New(s *zstore.Store) (*Board, error) {
	col, err := zstore.NewCollection[Entry](s, "scores")
	if err != nil {
		return nil, fmt.Errorf("open scores collection: %w", err)
	}
	return &Board{entries: col}, nil
}

// Record adds a finished shift to the board and prunes it to the top Keep
// entries.
func (b *Board) Record(name string, score int) (Entry, error) {
	e := Entry{
		ID:    uuid.NewString(),
		Name:  name,
		Score: score,
		Date:  time.Now().UTC(),
	}

	if err := b.entries.Put(e.ID, e); err != nil {
		return Entry{}, fmt.Errorf("record score: %w", err)
	}

	if err := b.prune(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Top returns up to n entries sorted by score descending, newest first on
// ties.
func (b *Board) Top(n int) ([]Entry, error) {
	all, err := b.entries.List()
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	sortEntries(all)
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// Reset deletes every entry.
func (b *Board) Reset() error {
	all, err := b.entries.List()
	if err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}
	for _, e := range all {
		if err := b.entries.Delete(e.ID); err != nil {
			return fmt.Errorf("reset scores: delete %s: %w", e.ID, err)
		}
	}
	return nil
}

// prune trims everything below the top Keep entries.
func (b *Board) prune() error {
	all, err := b.entries.List()
	if err != nil {
		return fmt.Errorf("prune scores: %w", err)
	}
	if len(all) <= Keep {
		return nil
	}

	sortEntries(all)
	for _, e := range all[Keep:] {
		if err := b.entries.Delete(e.ID); err != nil {
			return fmt.Errorf("prune scores: delete %s: %w", e.ID, err)
		}
	}
	return nil
}

func sortEntries(es []Entry) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Score != es[j].Score {
			return es[i].Score > es[j].Score
		}
		return es[i].Date.After(es[j].Date)
	})
}
