// Package dictionary loads and holds the candidate word set. The store is
// built once at startup and never mutated afterwards, so it can be scanned
// from any number of goroutines without locking.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrEmptyDictionary is returned when the source contains no usable words
// after trimming and filtering.
var ErrEmptyDictionary = errors.New("dictionary is empty after filtering")

// Word is a single dictionary entry. Text keeps the original casing for
// display; the normalized form is what matching runs against.
type Word struct {
	Text string
	norm string
}

// Norm returns the normalized form of the word.
func (w Word) Norm() string {
	return w.norm
}

// Store is an immutable collection of unique words plus a patricia trie
// index over the normalized text for exact and prefix lookups.
type Store struct {
	words         []Word
	index         *patricia.Trie
	caseSensitive bool
}

// Load reads a line-oriented word list from path. Lines are trimmed of
// surrounding whitespace, empty lines are dropped, and duplicates (after
// normalization) keep their first occurrence.
func Load(path string, caseSensitive bool) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	store, err := LoadReader(file, caseSensitive)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return store, nil
}

// LoadReader builds a Store from any line-oriented reader.
func LoadReader(r io.Reader, caseSensitive bool) (*Store, error) {
	store := &Store{
		index:         patricia.NewTrie(),
		caseSensitive: caseSensitive,
	}

	scanner := bufio.NewScanner(r)
	dropped := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		norm := store.Normalize(line)
		if store.index.Get(patricia.Prefix(norm)) != nil {
			dropped++
			continue
		}
		store.index.Insert(patricia.Prefix(norm), len(store.words))
		store.words = append(store.words, Word{Text: line, norm: norm})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if len(store.words) == 0 {
		return nil, ErrEmptyDictionary
	}

	if dropped > 0 {
		log.Debugf("Dropped %d duplicate entries", dropped)
	}
	log.Debugf("Dictionary loaded: %d words", len(store.words))
	return store, nil
}

// Normalize folds a string according to the store's case policy. Rankers
// must use the same folding as the store so scores line up with lookups.
func (s *Store) Normalize(text string) string {
	if s.caseSensitive {
		return text
	}
	return strings.ToLower(text)
}

// Words returns every stored word in load order. The returned slice is
// shared and must not be modified.
func (s *Store) Words() []Word {
	return s.words
}

// Len returns the number of stored words.
func (s *Store) Len() int {
	return len(s.words)
}

// Contains reports whether the normalized form of text is a stored word.
func (s *Store) Contains(text string) bool {
	return s.index.Get(patricia.Prefix(s.Normalize(text))) != nil
}

// CompletePrefix returns up to limit stored words whose normalized text
// starts with prefix, in ascending normalized order.
func (s *Store) CompletePrefix(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	var hits []int
	err := s.index.VisitSubtree(patricia.Prefix(s.Normalize(prefix)), func(p patricia.Prefix, item patricia.Item) error {
		hits = append(hits, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		return s.words[hits[i]].norm < s.words[hits[j]].norm
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	completions := make([]string, len(hits))
	for i, idx := range hits {
		completions[i] = s.words[idx].Text
	}
	return completions
}
