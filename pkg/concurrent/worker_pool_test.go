package concurrent

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	var calls atomic.Int64
	wp := NewWorkerPool[int, int](4, 100)
	wp.Start(func(job int) int {
		calls.Add(1)
		return job * job
	})

	for i := 0; i < 100; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	sum := 0
	for res := range wp.CollectResults() {
		sum += res
	}
	assert.Equal(t, int64(100), calls.Load())
	assert.Equal(t, 328350, sum)
}

func TestMapKeepsJobOrder(t *testing.T) {
	jobs := []string{"Reception", "Bungalow 75", "Intersection 1", "Intersection 2"}
	got := Map(3, jobs, func(job string) int {
		return len(job)
	})
	assert.Equal(t, []int{9, 11, 14, 14}, got)

	assert.Empty(t, Map(2, []string{}, func(job string) int { return 0 }))
}
