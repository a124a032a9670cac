package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/marauder/internal/catalog"
)

// onceLoader performs the catalog load at most once per process and hands
// every caller the same outcome.
type onceLoader struct {
	next   catalog.Fetcher
	logger *zap.Logger
	source string

	once    sync.Once
	records []catalog.Character
	err     error
}

func newOnceLoader(next catalog.Fetcher, logger *zap.Logger, source string) *onceLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &onceLoader{next: next, logger: logger, source: source}
}

// Load implements catalog.Fetcher.
func (o *onceLoader) Load(ctx context.Context) ([]catalog.Character, error) {
	o.once.Do(func() {
		start := time.Now()
		o.records, o.err = o.next.Load(ctx)
		if o.err != nil {
			o.logger.Error("catalog load failed",
				zap.String("source", o.source),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(o.err),
			)
			o.records = nil
			return
		}
		o.logger.Info("catalog loaded",
			zap.String("source", o.source),
			zap.Int("records", len(o.records)),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
	return o.records, o.err
}
