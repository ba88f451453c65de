package model

import "sync"

// CounterToPool returns a counter to the pool for reuse
func CounterToPool(counter *Counter, pool *CounterPool) {
	if pool == nil {
		return
	}

	pool.Put(counter)
}

// CounterPool recycles per-round counter buffers
type CounterPool struct {
	pool sync.Pool
}

func NewCounterPool() *CounterPool {
	return &CounterPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Counter{}
			},
		},
	}
}

// Get retrieves a counter from the pool, resetting its dimensions
func (p *CounterPool) Get(width, height int) *Counter {
	c := p.pool.Get().(*Counter)
	c.Reset(width, height)
	return c
}

// Put returns a counter to the pool, clearing its counts
func (p *CounterPool) Put(c *Counter) {
	// Clear the counter before returning to pool
	c.Clear()
	p.pool.Put(c)
}
