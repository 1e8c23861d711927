package engine

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	"github.com/lintang-b-s/binknap/pkg/resultio"
	"github.com/lintang-b-s/binknap/pkg/util"
	"go.uber.org/zap"
)

// Engine runs load -> sort -> frontier -> sink for one instance at a time. It holds no
// per-run state, so one Engine can serve concurrent runs.
type Engine struct {
	log       *zap.Logger
	classify  pkg.ClassifyMode
	policy    frontier.CutPolicy
	maxPoints int
}

type Result struct {
	NumRight    int
	NumUp       int
	NumDiagonal int
	Emitted     int
	Truncated   bool
	Elapsed     time.Duration
}

func NewEngine(log *zap.Logger, classify pkg.ClassifyMode, policy frontier.CutPolicy, maxPoints int) *Engine {
	return &Engine{
		log:       log,
		classify:  classify,
		policy:    policy,
		maxPoints: maxPoints,
	}
}

func NewEngineFromConfig(cfg util.SolverConfig, log *zap.Logger) (*Engine, error) {
	classify, err := pkg.ParseClassifyMode(cfg.ClassifyMode)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid classify mode")
	}
	policy, err := frontier.ParseCutPolicy(cfg.CutPolicy)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid cut policy")
	}
	return NewEngine(log, classify, policy, cfg.MaxPoints), nil
}

func (e *Engine) ClassifyMode() pkg.ClassifyMode {
	return e.classify
}

func (e *Engine) CutPolicy() frontier.CutPolicy {
	return e.policy
}

// Prepare classifies and sorts raw items.
func (e *Engine) Prepare(items []datastructure.Item) (*datastructure.Buckets, error) {
	b, err := datastructure.NewBucketsFromItems(items, e.classify)
	if err != nil {
		return nil, err
	}
	b.Sort()
	return b, nil
}

func (e *Engine) LoadFile(filename string) (*datastructure.Buckets, error) {
	e.log.Info("Reading instance from ", zap.String("instanceFile", filename))
	b, err := datastructure.LoadBuckets(filename, e.classify)
	if err != nil {
		return nil, err
	}
	b.Sort()

	e.log.Debug("instance classified",
		zap.String("classifyMode", e.classify.String()),
		zap.Int("numRight", b.NumRight()),
		zap.Int("numUp", b.NumUp()),
		zap.Int("numDiagonal", b.NumDiagonal()))
	return b, nil
}

// Solve enumerates the frontier of sorted buckets into sink. Hitting the point limit is
// reported through Result.Truncated, not as an error.
func (e *Engine) Solve(ctx context.Context, b *datastructure.Buckets, sink frontier.Sink) (Result, error) {
	start := time.Now()
	fb := frontier.NewBuilder(b, e.policy, e.maxPoints)
	emitted, err := fb.Build(ctx, sink)

	res := Result{
		NumRight:    b.NumRight(),
		NumUp:       b.NumUp(),
		NumDiagonal: b.NumDiagonal(),
		Emitted:     emitted,
		Elapsed:     time.Since(start),
	}
	if errors.Is(err, util.ErrPointLimitExceeded) {
		e.log.Warn("frontier truncated", zap.Int("maxPoints", e.maxPoints))
		res.Truncated = true
		err = nil
	}
	return res, err
}

// SolveFile reads instanceFile and writes one line per frontier point to resultFile.
// The result file is only created once the instance has been read.
func (e *Engine) SolveFile(ctx context.Context, instanceFile, resultFile string, compress bool) (Result, error) {
	b, err := e.LoadFile(instanceFile)
	if err != nil {
		return Result{}, err
	}

	w, err := resultio.Create(resultFile, b.NumRight(), b.NumUp(), b.NumDiagonal(), compress)
	if err != nil {
		return Result{}, util.WrapErrorf(err, util.ErrFileOpen, "error creating result file %s", resultFile)
	}

	res, err := e.Solve(ctx, b, w)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return res, err
	}

	e.log.Info("frontier written",
		zap.String("resultFile", resultFile),
		zap.Int("solutionsFound", res.Emitted),
		zap.Int("linesWritten", w.Lines()),
		zap.Bool("truncated", res.Truncated),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}
