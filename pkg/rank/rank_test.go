package rank

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/bastiangx/fuzzdict/pkg/dictionary"
)

func mustStore(t testing.TB, words ...string) *dictionary.Store {
	t.Helper()
	store, err := dictionary.LoadReader(strings.NewReader(strings.Join(words, "\n")), false)
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return store
}

func TestLevenshteinDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"book", "back", 2},
		{"book", "books", 1},
		{"hello", "hallo", 1},
		{"because", "becuase", 2},
		{"über", "uber", 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := Distance(tc.a, tc.b)
			if dist != tc.expected {
				t.Errorf("expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

func TestRankScenarioCet(t *testing.T) {
	store := mustStore(t, "cat", "bat", "hat", "dog")

	matches, err := Rank(store, "cet", 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	// "cat" is one edit away; "bat" and "hat" tie at two edits and the
	// lexicographic tie-break picks "bat".
	if matches[0].Word != "cat" || matches[1].Word != "bat" {
		t.Errorf("expected [cat bat], got [%s %s]", matches[0].Word, matches[1].Word)
	}
}

func TestRankScenarioBecuase(t *testing.T) {
	store := mustStore(t, "because", "becuase", "become")

	matches, err := Rank(store, "becuase", 3)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	if matches[0].Word != "becuase" || matches[0].Score != 0 {
		t.Errorf("expected exact match 'becuase' first with score 0, got %q score %v", matches[0].Word, matches[0].Score)
	}
	if matches[1].Word != "because" {
		t.Errorf("expected 'because' second (transposition is 2 edits), got %q", matches[1].Word)
	}
	if matches[2].Word != "become" {
		t.Errorf("expected 'become' last, got %q", matches[2].Word)
	}
}

func TestRankExactMatchFirst(t *testing.T) {
	store := mustStore(t, "apple", "apply", "applet", "ample")

	for _, query := range []string{"apple", "Apple", "APPLE"} {
		matches, err := Rank(store, query, 1)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		if len(matches) == 0 || matches[0].Word != "apple" {
			t.Errorf("query %q: expected exact match first, got %v", query, matches)
		}
		if matches[0].Score != 0 {
			t.Errorf("query %q: expected score 0, got %v", query, matches[0].Score)
		}
	}
}

func TestRankEmptyQuery(t *testing.T) {
	store := mustStore(t, "cat", "dog")

	matches, err := Rank(store, "", 10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("empty query should yield no matches, got %v", matches)
	}
}

func TestRankLimitBoundaries(t *testing.T) {
	store := mustStore(t, "cat", "dog")

	matches, err := Rank(store, "cat", 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("limit 0 should yield no matches, got %v", matches)
	}

	_, err = Rank(store, "cat", -1)
	if !errors.Is(err, ErrNegativeLimit) {
		t.Errorf("expected ErrNegativeLimit, got %v", err)
	}
}

func TestRankDeterminism(t *testing.T) {
	store := mustStore(t, randomWords(500)...)

	first, err := Rank(store, "worb", 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Rank(store, "worb", 20)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestRankMonotonicTruncation(t *testing.T) {
	store := mustStore(t, randomWords(300)...)

	full, err := Rank(store, "wird", 50)
	if err != nil {
		t.Fatal(err)
	}
	for limit := 5; limit <= 50; limit += 5 {
		prefix, err := Rank(store, "wird", limit)
		if err != nil {
			t.Fatal(err)
		}
		want := limit
		if want > len(full) {
			want = len(full)
		}
		if !reflect.DeepEqual(prefix, full[:want]) {
			t.Fatalf("limit %d is not a prefix of limit 50", limit)
		}
	}
}

func TestRankScoreNormalized(t *testing.T) {
	store := mustStore(t, "a", "abcdefghij")

	matches, err := Rank(store, "ab", 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if m.Score < 0 || m.Score > 1 {
			t.Errorf("score for %q out of [0,1]: %v", m.Word, m.Score)
		}
	}
	// The short word is one deletion from a two-rune query; the long one
	// needs eight insertions. Normalization must keep the short word ahead.
	if matches[0].Word != "a" {
		t.Errorf("expected 'a' first, got %q", matches[0].Word)
	}
}

func TestRankContextCancelled(t *testing.T) {
	store := mustStore(t, randomWords(5000)...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankContext(ctx, store, "word", 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// randomWords generates a reproducible word list for property tests.
func randomWords(n int) []string {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[string]bool, n)
	words := make([]string, 0, n)
	for len(words) < n {
		length := 3 + rng.Intn(10)
		var sb strings.Builder
		for i := 0; i < length; i++ {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
		w := sb.String()
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

func BenchmarkRank(b *testing.B) {
	store := mustStore(b, randomWords(100000)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		queries := []string{"recieve", "wierd", "accomodate", "definately"}
		if _, err := Rank(store, queries[i%len(queries)], 20); err != nil {
			b.Fatal(err)
		}
	}
}
