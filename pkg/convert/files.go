package convert

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mMerlin/stl2scad/internal/config"
	"github.com/mMerlin/stl2scad/internal/logger"
)

// Files converts several STL files concurrently. Each file is an
// independent pipeline, so a structural defect in one input aborts
// only that conversion; the others run to completion. The first error
// encountered is returned after all conversions finish.
func Files(ctx context.Context, paths []string, opts *config.Options) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if _, err := File(ctx, path, opts); err != nil {
				logger.Error("conversion failed", zap.String("input", path), zap.Error(err))
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
