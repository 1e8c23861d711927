package usecases

import (
	"context"
	"testing"

	"github.com/lintang-b-s/binknap/pkg"
	"github.com/lintang-b-s/binknap/pkg/datastructure"
	"github.com/lintang-b-s/binknap/pkg/frontier"
	"github.com/lintang-b-s/binknap/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func smallItems() []datastructure.Item {
	return []datastructure.Item{
		datastructure.NewItem(10, 1, 0),
		datastructure.NewItem(5, 0, 1),
		datastructure.NewItem(8, 1, 1),
	}
}

func TestFrontierServiceCache(t *testing.T) {
	fs, err := NewFrontierService(zap.NewNop(), 8, 100, 1000)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := fs.Frontier(ctx, FrontierQuery{Items: smallItems()})
	require.NoError(t, err)
	assert.Equal(t, 9, first.Emitted)
	assert.Len(t, first.Points, 9)

	// same instance in a different item order sorts to the same buckets
	reordered := smallItems()
	reordered[0], reordered[2] = reordered[2], reordered[0]
	second, err := fs.Frontier(ctx, FrontierQuery{Items: reordered})
	require.NoError(t, err)
	assert.Same(t, first, second)

	third, err := fs.Frontier(ctx, FrontierQuery{Items: smallItems(), Cut: frontier.CUT_NONE})
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 10, third.Emitted)
}

func TestFrontierServiceWithoutCache(t *testing.T) {
	fs, err := NewFrontierService(zap.NewNop(), 0, 100, 1000)
	require.NoError(t, err)

	a, err := fs.Frontier(context.Background(), FrontierQuery{Items: smallItems()})
	require.NoError(t, err)
	b, err := fs.Frontier(context.Background(), FrontierQuery{Items: smallItems()})
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, a, b)
}

func TestFrontierServiceErrors(t *testing.T) {
	fs, err := NewFrontierService(zap.NewNop(), 8, 2, 1000)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = fs.Frontier(ctx, FrontierQuery{Items: smallItems()})
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	_, err = fs.Frontier(ctx, FrontierQuery{Items: []datastructure.Item{datastructure.NewItem(3, 0, 0)}})
	assert.ErrorIs(t, err, util.ErrBadParamInput)
	assert.ErrorIs(t, err, util.ErrMalformedRecord)

	res, err := fs.Frontier(ctx, FrontierQuery{
		Items:    []datastructure.Item{datastructure.NewItem(3, 0, 0)},
		Classify: pkg.CLASSIFY_LITERAL,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumDiagonal)
}

func TestFrontierServiceTruncated(t *testing.T) {
	fs, err := NewFrontierService(zap.NewNop(), 8, 100, 1000)
	require.NoError(t, err)

	res, err := fs.Frontier(context.Background(), FrontierQuery{Items: smallItems(), MaxPoints: 2})
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Len(t, res.Points, 2)
}

func TestCacheKey(t *testing.T) {
	newBuckets := func(right ...int) *datastructure.Buckets {
		b := datastructure.NewBucketsFromSlices(right, nil, nil)
		b.Sort()
		return b
	}

	assert.Equal(t, cacheKey(newBuckets(1, 2), frontier.CUT_STRICT, 0), cacheKey(newBuckets(2, 1), frontier.CUT_STRICT, 0))
	assert.NotEqual(t, cacheKey(newBuckets(1, 2), frontier.CUT_STRICT, 0), cacheKey(newBuckets(1, 2), frontier.CUT_ZONE, 0))
	assert.NotEqual(t, cacheKey(newBuckets(1, 2), frontier.CUT_STRICT, 0), cacheKey(newBuckets(1, 2), frontier.CUT_STRICT, 5))
	assert.NotEqual(t, cacheKey(newBuckets(1, 2), frontier.CUT_STRICT, 0), cacheKey(newBuckets(3), frontier.CUT_STRICT, 0))
}

func TestFrontierServiceResponsePointCap(t *testing.T) {
	fs, err := NewFrontierService(zap.NewNop(), 8, 100, 5)
	require.NoError(t, err)
	ctx := context.Background()

	testCases := []struct {
		name      string
		maxPoints int
		emitted   int
		truncated bool
	}{
		{name: "unbounded request is clamped", maxPoints: 0, emitted: 5, truncated: true},
		{name: "request above the cap is clamped", maxPoints: 50, emitted: 5, truncated: true},
		{name: "request below the cap is kept", maxPoints: 3, emitted: 3, truncated: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := fs.Frontier(ctx, FrontierQuery{Items: smallItems(), MaxPoints: tt.maxPoints})
			require.NoError(t, err)
			assert.Equal(t, tt.emitted, res.Emitted)
			assert.Len(t, res.Points, tt.emitted)
			assert.Equal(t, tt.truncated, res.Truncated)
		})
	}

	large, err := NewFrontierService(zap.NewNop(), 8, 100, 9)
	require.NoError(t, err)
	res, err := large.Frontier(ctx, FrontierQuery{Items: smallItems()})
	require.NoError(t, err)
	assert.Equal(t, 9, res.Emitted)
	assert.False(t, res.Truncated)
}

func TestEffectiveMaxPoints(t *testing.T) {
	fs := &FrontierService{maxPoints: 10}
	assert.Equal(t, 10, fs.effectiveMaxPoints(0))
	assert.Equal(t, 10, fs.effectiveMaxPoints(11))
	assert.Equal(t, 4, fs.effectiveMaxPoints(4))

	unbounded := &FrontierService{}
	assert.Equal(t, 0, unbounded.effectiveMaxPoints(0))
	assert.Equal(t, 7, unbounded.effectiveMaxPoints(7))
}
