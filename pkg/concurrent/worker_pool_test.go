package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[int, int](4, 100)
	for i := 0; i < 100; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Start(func(job int) int {
		return job * job
	})
	wp.Wait()

	got := make([]int, 0, 100)
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)

	assert.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
}

func TestProcess(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []string
	}{
		{name: "more jobs than workers", numWorkers: 2, jobs: []string{"a", "bb", "ccc", "dddd", "eeeee"}},
		{name: "zero workers still runs", numWorkers: 0, jobs: []string{"a", "bb"}},
		{name: "no jobs", numWorkers: 3, jobs: nil},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Process(tt.numWorkers, tt.jobs, func(s string) int {
				return len(s)
			})
			sort.Ints(got)

			want := make([]int, len(tt.jobs))
			for i, s := range tt.jobs {
				want[i] = len(s)
			}
			sort.Ints(want)
			assert.Equal(t, want, got)
		})
	}
}
