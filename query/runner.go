package query

import (
	"context"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/conf"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/logger"
	"github.com/spirit-labs/colcmp/parser"
	"github.com/spirit-labs/colcmp/segment"
	"github.com/spirit-labs/colcmp/transform"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// SegmentResult holds the result of a comparison for every row of a segment, in block order.
type SegmentResult struct {
	SegmentName string
	// Matches is 1 where the comparison holds and 0 elsewhere
	Matches []int32
	// NullRows are the rows where an operand is null, nil when there are none
	NullRows *roaring.Bitmap
}

// Runner evaluates filter expressions over segments. Segments are evaluated concurrently, each with its own bound
// transform tree, as trees hold per-block buffers and must not be shared between goroutines.
type Runner struct {
	cfg         conf.Config
	factory     *transform.Factory
	parser      *parser.Parser
	parserLock  sync.Mutex
	exprCache   *lru.Cache
	segmentsSem *semaphore.Weighted
	log         *logger.KernelLogger
}

func NewRunner(cfg conf.Config) (*Runner, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	exprCache, err := lru.New(*cfg.ExpressionCacheSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log, err := logger.GetLogger("query")
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:         cfg,
		factory:     transform.NewFactory(cfg),
		parser:      parser.NewParser(),
		exprCache:   exprCache,
		segmentsSem: semaphore.NewWeighted(int64(*cfg.MaxConcurrentSegments)),
		log:         log,
	}, nil
}

// Evaluate evaluates the expression on every segment. Results are in the same order as segments. The first error
// cancels the evaluation of the remaining segments. At most MaxConcurrentSegments segments are evaluated at once,
// across all calls.
func (r *Runner) Evaluate(ctx context.Context, expression string, segments []*segment.Segment) ([]SegmentResult, error) {
	desc, err := r.parse(expression)
	if err != nil {
		return nil, err
	}
	results := make([]SegmentResult, len(segments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*r.cfg.MaxConcurrentSegments)
	for i, seg := range segments {
		i, seg := i, seg
		g.Go(func() error {
			if err := r.segmentsSem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer r.segmentsSem.Release(1)
			res, err := r.evaluateSegment(gctx, desc, seg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.log.Debugf("evaluated '%s' on %d segments", expression, len(segments))
	return results, nil
}

func (r *Runner) parse(expression string) (parser.ExprDesc, error) {
	if cached, ok := r.exprCache.Get(expression); ok {
		return cached.(parser.ExprDesc), nil
	}
	r.parserLock.Lock()
	desc, err := r.parser.ParseExpression(expression)
	r.parserLock.Unlock()
	if err != nil {
		return nil, err
	}
	r.exprCache.Add(expression, desc)
	return desc, nil
}

func (r *Runner) evaluateSegment(ctx context.Context, desc parser.ExprDesc, seg *segment.Segment) (SegmentResult, error) {
	tf, err := r.factory.Create(desc, seg.ColumnContexts())
	if err != nil {
		return SegmentResult{}, err
	}
	res := SegmentResult{SegmentName: seg.Name, Matches: make([]int32, 0, seg.RowCount())}
	for _, blk := range seg.Blocks {
		if err := ctx.Err(); err != nil {
			return SegmentResult{}, err
		}
		offset := len(res.Matches)
		if err := appendBlockResult(tf, blk, &res); err != nil {
			return SegmentResult{}, err
		}
		nulls, err := tf.NullBitmap(blk)
		if err != nil {
			return SegmentResult{}, err
		}
		if nulls != nil && !nulls.IsEmpty() {
			if res.NullRows == nil {
				res.NullRows = roaring.New()
			}
			it := nulls.Iterator()
			for it.HasNext() {
				res.NullRows.Add(uint32(offset) + it.Next())
			}
		}
	}
	return res, nil
}

func appendBlockResult(tf transform.TransformFunction, blk *block.Block, res *SegmentResult) error {
	// the returned slice is reused by the next call so it is copied
	matches, err := tf.TransformToIntValuesSV(blk)
	if err != nil {
		return err
	}
	res.Matches = append(res.Matches, matches...)
	return nil
}
