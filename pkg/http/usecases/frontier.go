package usecases

import (
	"context"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/engine"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	"github.com/lintang-b-s/binknap/pkg/util"
	"go.uber.org/zap"
)

type FrontierQuery struct {
	Items     []datastructure.Item
	Classify  pkg.ClassifyMode
	Cut       frontier.CutPolicy
	MaxPoints int
}

type FrontierResult struct {
	NumRight    int
	NumUp       int
	NumDiagonal int
	Emitted     int
	Truncated   bool
	Points      []frontier.Point
}

type FrontierService struct {
	log       *zap.Logger
	cache     *lru.Cache[uint64, *FrontierResult] // nil when caching is off
	maxItems  int
	maxPoints int
}

// NewFrontierService caps every request at maxItems items and maxPoints emitted points.
func NewFrontierService(log *zap.Logger, cacheSize, maxItems, maxPoints int) (*FrontierService, error) {
	fs := &FrontierService{log: log, maxItems: maxItems, maxPoints: maxPoints}
	if cacheSize > 0 {
		cache, err := lru.New[uint64, *FrontierResult](cacheSize)
		if err != nil {
			return nil, err
		}
		fs.cache = cache
	}
	return fs, nil
}

// Frontier solves one instance. Identical sorted instances with identical options share
// a cached result; cached results must not be modified by callers.
func (fs *FrontierService) Frontier(ctx context.Context, q FrontierQuery) (*FrontierResult, error) {
	if len(q.Items) > fs.maxItems {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "instance has %d items, the limit is %d", len(q.Items), fs.maxItems)
	}

	maxPoints := fs.effectiveMaxPoints(q.MaxPoints)
	eng := engine.NewEngine(fs.log, q.Classify, q.Cut, maxPoints)
	b, err := eng.Prepare(q.Items)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid instance")
	}

	key := cacheKey(b, q.Cut, maxPoints)
	if fs.cache != nil {
		if res, ok := fs.cache.Get(key); ok {
			fs.log.Debug("frontier cache hit", zap.Uint64("key", key))
			return res, nil
		}
	}

	col := frontier.NewCollector()
	res, err := eng.Solve(ctx, b, col)
	if err != nil {
		return nil, err
	}

	out := &FrontierResult{
		NumRight:    res.NumRight,
		NumUp:       res.NumUp,
		NumDiagonal: res.NumDiagonal,
		Emitted:     res.Emitted,
		Truncated:   res.Truncated,
		Points:      col.Points(),
	}
	if fs.cache != nil {
		fs.cache.Add(key, out)
	}
	return out, nil
}

// effectiveMaxPoints clamps the requested limit (0 = unbounded) to the service cap.
func (fs *FrontierService) effectiveMaxPoints(requested int) int {
	if fs.maxPoints <= 0 {
		return requested
	}
	if requested <= 0 || requested > fs.maxPoints {
		return fs.maxPoints
	}
	return requested
}

// cacheKey hashes the sorted buckets and every option that changes the emitted points.
func cacheKey(b *datastructure.Buckets, cut frontier.CutPolicy, maxPoints int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}

	writeInt(int(cut))
	writeInt(maxPoints)
	for _, bucket := range [][]int{b.Right(), b.Up(), b.Diagonal()} {
		writeInt(len(bucket))
		for _, p := range bucket {
			writeInt(p)
		}
	}
	return d.Sum64()
}
