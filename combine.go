package reflectdb

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jward/reflectdb/internal/rdb"
	"github.com/jward/reflectdb/internal/snapshot"
)

// Combine builds one aggregate database from per-unit snapshot files using a
// two-phase pipeline:
//
//	Phase A (parallel): load every snapshot, bounded by NumCPU.
//	Phase B (serial):   merge into a fresh aggregate, in argument order.
//
// The database has no internal locking, so only the load phase fans out;
// merging stays strictly sequential. The result is content-equivalent for any
// ordering of paths, since Merge dedups by per-kind equality.
func Combine(ctx context.Context, paths []string) (*Database, error) {
	dbs := make([]*rdb.Database, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			db, err := snapshot.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			dbs[i] = db
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reflectdb: combine: %w", err)
	}

	agg := rdb.NewDatabase()
	for _, db := range dbs {
		agg.Merge(db)
	}
	return agg, nil
}
