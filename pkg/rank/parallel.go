package rank

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bastiangx/fuzzdict/pkg/dictionary"
)

// RankParallel splits the dictionary scan across workers goroutines, each
// scoring a disjoint shard, then merges the per-shard top lists. The merge
// uses the same ordering as the sequential scan, so for any input the
// result is identical to RankContext. workers <= 0 means GOMAXPROCS.
func RankParallel(ctx context.Context, store *dictionary.Store, query string, limit, workers int) ([]Match, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if limit == 0 || query == "" {
		return nil, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	words := store.Words()
	if workers > len(words) {
		workers = len(words)
	}
	if workers <= 1 {
		return RankContext(ctx, store, query, limit)
	}

	shards := make([][]candidate, workers)
	g, gctx := errgroup.WithContext(ctx)
	shardSize := (len(words) + workers - 1) / workers

	for i := 0; i < workers; i++ {
		lo := i * shardSize
		hi := lo + shardSize
		if hi > len(words) {
			hi = len(words)
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			best, err := scanShard(gctx, store, words[lo:hi], query, limit)
			if err != nil {
				return err
			}
			shards[i] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return toMatches(mergeShards(shards, limit)), nil
}

// mergeShards k-way merges sorted per-shard candidate lists into a single
// top-limit list under the shared ordering.
func mergeShards(shards [][]candidate, limit int) []candidate {
	heads := make([]int, len(shards))
	merged := make([]candidate, 0, limit)

	for len(merged) < limit {
		bestShard := -1
		for i, shard := range shards {
			if heads[i] >= len(shard) {
				continue
			}
			if bestShard < 0 || less(shard[heads[i]], shards[bestShard][heads[bestShard]]) {
				bestShard = i
			}
		}
		if bestShard < 0 {
			break
		}
		merged = append(merged, shards[bestShard][heads[bestShard]])
		heads[bestShard]++
	}
	return merged
}
