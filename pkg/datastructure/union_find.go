package datastructure

import (
	"sync"
	"sync/atomic"
)

// DisjointSet. union by rank + path compression. not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
}

func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
	}
	return ds
}

func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets of x and y. returns false if they were already in the same set.
func (ds *DisjointSet) Union(x, y int) bool {
	px, py := ds.Find(x), ds.Find(y)
	if px == py {
		return false
	}

	switch {
	case ds.rank[px] < ds.rank[py]:
		ds.parent[px] = py
	case ds.rank[px] > ds.rank[py]:
		ds.parent[py] = px
	default:
		ds.parent[py] = px
		ds.rank[px]++
	}
	return true
}

func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// ConcurrentDisjointSet can be shared by many goroutines. Find is lock free (atomic path halving with compare and swap),
// Union locks the two roots in increasing index order & retries if either root changed before the locks were taken.
// the final partition does not depend on goroutine scheduling, only the chosen roots do.
type ConcurrentDisjointSet struct {
	parent  []int64
	rank    []int32
	mutexes []sync.Mutex
}

func NewConcurrentDisjointSet(n int) *ConcurrentDisjointSet {
	ds := &ConcurrentDisjointSet{
		parent:  make([]int64, n),
		rank:    make([]int32, n),
		mutexes: make([]sync.Mutex, n),
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = int64(i)
	}
	return ds
}

func (ds *ConcurrentDisjointSet) Find(x int) int {
	cur := int64(x)
	for {
		p := atomic.LoadInt64(&ds.parent[cur])
		if p == cur {
			return int(cur)
		}

		gp := atomic.LoadInt64(&ds.parent[p])
		if gp == p {
			return int(p)
		}

		// path halving
		atomic.CompareAndSwapInt64(&ds.parent[cur], p, gp)
		cur = p
	}
}

func (ds *ConcurrentDisjointSet) Union(x, y int) bool {
	for {
		px, py := ds.Find(x), ds.Find(y)
		if px == py {
			return false
		}

		if px > py {
			px, py = py, px
		}

		ds.mutexes[px].Lock()
		ds.mutexes[py].Lock()

		// a root only gets a parent while its lock is held, so both still being roots means px & py are current.
		if !ds.isRoot(px) || !ds.isRoot(py) {
			ds.mutexes[py].Unlock()
			ds.mutexes[px].Unlock()
			continue
		}

		rankPx := atomic.LoadInt32(&ds.rank[px])
		rankPy := atomic.LoadInt32(&ds.rank[py])

		switch {
		case rankPx < rankPy:
			atomic.StoreInt64(&ds.parent[px], int64(py))
		case rankPx > rankPy:
			atomic.StoreInt64(&ds.parent[py], int64(px))
		default:
			atomic.StoreInt64(&ds.parent[py], int64(px))
			atomic.StoreInt32(&ds.rank[px], rankPx+1)
		}

		ds.mutexes[py].Unlock()
		ds.mutexes[px].Unlock()
		return true
	}
}

func (ds *ConcurrentDisjointSet) isRoot(x int) bool {
	return atomic.LoadInt64(&ds.parent[x]) == int64(x)
}

func (ds *ConcurrentDisjointSet) Len() int {
	return len(ds.parent)
}
