// Package rank scores a query against every word in a dictionary store and
// returns the closest matches. Ranking is a pure function of its inputs:
// no state is carried between calls, so it is safe to re-invoke on every
// keystroke and to run shards of the scan concurrently.
package rank

import (
	"context"
	"errors"

	"github.com/bastiangx/fuzzdict/pkg/dictionary"
)

// ErrNegativeLimit is returned when a caller passes a negative result
// limit. This is a contract violation in the calling layer, not a user
// condition.
var ErrNegativeLimit = errors.New("rank: limit must not be negative")

// Match pairs a dictionary word with its dissimilarity score. Scores are
// edit distance normalized by the longer of the two strings, so they fall
// in [0,1] with 0 meaning an exact match after case folding.
type Match struct {
	Word  string
	Score float64
}

// candidate keeps the normalized text alongside the match so ordering
// stays strict: score, then normalized text, then original text.
type candidate struct {
	word  string
	norm  string
	score float64
}

func less(a, b candidate) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if a.norm != b.norm {
		return a.norm < b.norm
	}
	return a.word < b.word
}

// cancelCheckInterval is how many words are scored between context checks.
const cancelCheckInterval = 1024

// Rank scores query against every word in store and returns the best
// limit matches, ascending by score with lexicographic tie-break on the
// normalized text. An empty query or a zero limit yields no matches.
func Rank(store *dictionary.Store, query string, limit int) ([]Match, error) {
	return RankContext(context.Background(), store, query, limit)
}

// RankContext is Rank with cooperative cancellation: a superseded scan can
// be abandoned mid-flight by cancelling ctx.
func RankContext(ctx context.Context, store *dictionary.Store, query string, limit int) ([]Match, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if limit == 0 || query == "" {
		return nil, nil
	}

	best, err := scanShard(ctx, store, store.Words(), query, limit)
	if err != nil {
		return nil, err
	}
	return toMatches(best), nil
}

// scanShard scores query against a disjoint slice of the store's words and
// keeps the top limit candidates in sorted order. Sequential ranking is a
// single shard covering the whole store; parallel ranking merges several.
func scanShard(ctx context.Context, store *dictionary.Store, words []dictionary.Word, query string, limit int) ([]candidate, error) {
	queryRunes := []rune(store.Normalize(query))
	lq := len(queryRunes)

	best := make([]candidate, 0, limit)
	for i, w := range words {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		norm := w.Norm()
		wordRunes := []rune(norm)
		lw := len(wordRunes)
		longer := lq
		if lw > longer {
			longer = lw
		}

		// Length disparity bounds the distance from below, which lets a
		// full result set skip the DP entirely for hopeless words.
		if len(best) == limit {
			diff := lq - lw
			if diff < 0 {
				diff = -diff
			}
			if float64(diff)/float64(longer) > best[limit-1].score {
				continue
			}
		}

		dist := distanceRunes(queryRunes, wordRunes)
		cand := candidate{
			word:  w.Text,
			norm:  norm,
			score: float64(dist) / float64(longer),
		}
		best = insertBounded(best, cand, limit)
	}
	return best, nil
}

// insertBounded inserts cand into the sorted slice best, keeping at most
// limit entries. limit is small (display rows), so a linear shift is fine.
func insertBounded(best []candidate, cand candidate, limit int) []candidate {
	if len(best) == limit && !less(cand, best[limit-1]) {
		return best
	}

	pos := len(best)
	for pos > 0 && less(cand, best[pos-1]) {
		pos--
	}

	if len(best) < limit {
		best = append(best, candidate{})
	}
	copy(best[pos+1:], best[pos:])
	best[pos] = cand
	return best
}

func toMatches(best []candidate) []Match {
	if len(best) == 0 {
		return nil
	}
	matches := make([]Match, len(best))
	for i, c := range best {
		matches[i] = Match{Word: c.word, Score: c.score}
	}
	return matches
}
