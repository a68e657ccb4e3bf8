package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/api/metrics"
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes job views to a fixed set of workers using consistent
// hashing on the job id, so updates to one job's counter are serialised.
type Dispatcher struct {
	workers []chan domain.JobView
	service ports.ViewService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.JobView, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.JobView, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a view to the worker responsible for its job. It never
// blocks: when the worker's channel is full the view is dropped and false is
// returned.
func (d *Dispatcher) Enqueue(view domain.JobView) bool {
	idx := d.shardIndex(view.JobID)
	select {
	case d.workers[idx] <- view:
		metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return true
	default:
		metrics.JobViewsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("job_id", view.JobID).Int("worker_id", idx).Msg("view queue full, dropping view")
		return false
	}
}

// shardIndex maps a job id deterministically to a worker index.
func (d *Dispatcher) shardIndex(jobID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(jobID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.JobView) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case view := <-ch:
			metrics.ViewQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.process(ctx, id, view)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, view domain.JobView) {
	start := time.Now()
	defer func() { metrics.ViewProcessingDuration.Observe(time.Since(start).Seconds()) }()

	counted, err := d.service.Record(ctx, view)
	switch {
	case err != nil:
		metrics.JobViewsTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("job_id", view.JobID).
			Int("worker_id", id).
			Msg("view recording failed")
	case counted:
		metrics.JobViewsTotal.WithLabelValues("counted").Inc()
	default:
		metrics.JobViewsTotal.WithLabelValues("repeat").Inc()
	}
}
