package post

import (
	"sync"
	"testing"

	"github.com/bmizerany/assert"
)

func TestPost(t *testing.T) {
	var q Queue
	var a int
	q.Post(func() {
		a = 1
	})
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 1, q.Tick())
	if a != 1 {
		t.Errorf("a should be 1")
	}
	assert.Equal(t, 0, q.Tick())
}

func TestPostFromCallback(t *testing.T) {
	var q Queue
	var order []int
	q.Post(func() {
		order = append(order, 1)
		q.Post(func() {
			order = append(order, 3)
		})
	})
	q.Post(func() {
		order = append(order, 2)
	})
	assert.Equal(t, 3, q.Tick())
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPostPanic(t *testing.T) {
	var q Queue
	ran := false
	q.Post(func() {
		panic("bad callback")
	})
	q.Post(func() {
		ran = true
	})
	q.Tick()
	assert.T(t, ran, "callback after a panicking one should still run")
}

func TestPostConcurrent(t *testing.T) {
	var q Queue
	var wait sync.WaitGroup
	count := 0
	for i := 0; i < 10; i++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for j := 0; j < 100; j++ {
				q.Post(func() {
					count++
				})
			}
		}()
	}
	wait.Wait()
	q.Tick()
	assert.Equal(t, 1000, count)
}
