package rank

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestParallelMatchesSequential(t *testing.T) {
	store := mustStore(t, randomWords(2000)...)
	queries := []string{"word", "qzx", "abcdefgh", "a", "theremin"}

	for _, query := range queries {
		for _, workers := range []int{1, 2, 3, 7, 16} {
			t.Run(fmt.Sprintf("%s/workers=%d", query, workers), func(t *testing.T) {
				seq, err := Rank(store, query, 25)
				if err != nil {
					t.Fatal(err)
				}
				par, err := RankParallel(context.Background(), store, query, 25, workers)
				if err != nil {
					t.Fatal(err)
				}
				if !reflect.DeepEqual(seq, par) {
					t.Errorf("parallel result differs from sequential\nseq: %v\npar: %v", seq, par)
				}
			})
		}
	}
}

func TestParallelSmallStore(t *testing.T) {
	// More workers than words must not lose or duplicate entries.
	store := mustStore(t, "cat", "bat", "hat")

	par, err := RankParallel(context.Background(), store, "cet", 10, 32)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := Rank(store, "cet", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seq, par) {
		t.Errorf("expected %v, got %v", seq, par)
	}
}

func TestParallelEmptyQueryAndLimits(t *testing.T) {
	store := mustStore(t, "cat", "dog")

	matches, err := RankParallel(context.Background(), store, "", 10, 4)
	if err != nil || len(matches) != 0 {
		t.Errorf("empty query: expected no matches and no error, got %v, %v", matches, err)
	}

	matches, err = RankParallel(context.Background(), store, "cat", 0, 4)
	if err != nil || len(matches) != 0 {
		t.Errorf("limit 0: expected no matches and no error, got %v, %v", matches, err)
	}

	_, err = RankParallel(context.Background(), store, "cat", -1, 4)
	if !errors.Is(err, ErrNegativeLimit) {
		t.Errorf("expected ErrNegativeLimit, got %v", err)
	}
}

func TestParallelCancelled(t *testing.T) {
	store := mustStore(t, randomWords(5000)...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankParallel(ctx, store, "word", 10, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func BenchmarkRankParallel(b *testing.B) {
	store := mustStore(b, randomWords(100000)...)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		queries := []string{"recieve", "wierd", "accomodate", "definately"}
		if _, err := RankParallel(ctx, store, queries[i%len(queries)], 20, 0); err != nil {
			b.Fatal(err)
		}
	}
}
