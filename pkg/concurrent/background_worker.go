package concurrent

import "sync"

type JobI interface{}

type JobFunc[T JobI, G any] func(job T) G

// BackgroundWorker runs jobFunc on a fixed number of goroutines. results are collected in completion order.
type BackgroundWorker[T JobI, G any] struct {
	workers   int
	msgC      chan T
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]

	resultsLock sync.Mutex
	results     []G
}

func NewBackgroundWorker[T JobI, G any](workers, buffer int, jobFunc JobFunc[T, G]) *BackgroundWorker[T, G] {
	if workers < 1 {
		workers = 1
	}
	return &BackgroundWorker[T, G]{
		workers: workers,
		msgC:    make(chan T, buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T, G]) TriggerProcessing(jobData T) {
	bw.msgC <- jobData
}

func (bw *BackgroundWorker[T, G]) Start() {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for jobData := range bw.msgC {
				res := bw.jobFunc(jobData)

				bw.resultsLock.Lock()
				bw.results = append(bw.results, res)
				bw.resultsLock.Unlock()
			}
		}()
	}
}

// Close stops accepting jobs, waits for the running ones & returns every job result.
func (bw *BackgroundWorker[T, G]) Close() []G {
	close(bw.msgC)
	bw.waitGroup.Wait()
	return bw.results
}
