package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maxsupermanhd/isochunk/primitives"
	"github.com/maxsupermanhd/isochunk/render"
	"github.com/maxsupermanhd/isochunk/render/renderers"
	"github.com/maxsupermanhd/lac"
)

var (
	ErrClosed         = errors.New("renderer is closed")
	ErrUnknownVariant = errors.New("unknown render variant")
)

type Options struct {
	QueueNormalLen      int
	QueuePriorityLen    int
	QueueFetchedLen     int
	RendererThreadCount int
	FetcherThreadCount  int
}

func OptionsFromConfig(cfg *lac.ConfSubtree) Options {
	return Options{
		QueueNormalLen:      cfg.GetDInt(64, "queueNormalLen"),
		QueuePriorityLen:    cfg.GetDInt(128, "queuePriorityLen"),
		QueueFetchedLen:     cfg.GetDInt(32, "queueFetchedLen"),
		RendererThreadCount: cfg.GetDInt(4, "rendererThreadCount"),
		FetcherThreadCount:  cfg.GetDInt(4, "fetcherThreadCount"),
	}
}

// RegionSetProvider opens the chunk source a tile is drawn from
type RegionSetProvider func(loc primitives.TileLocation) (render.RegionSet, error)

type RenderResult struct {
	ID       uuid.UUID
	Loc      primitives.TileLocation
	Img      *image.RGBA
	Err      error
	Loads    int
	Duration time.Duration
}

type renderTask struct {
	id      uuid.UUID
	loc     primitives.TileLocation
	rend    render.ChunkRenderer
	state   *render.RenderState
	err     error
	started time.Time
	result  chan RenderResult
}

type PriorityPipelineRender struct {
	qnormal   chan renderTask
	qpriority chan renderTask
	qfetched  chan renderTask
	rends     []render.ChunkRenderer
	regions   RegionSetProvider
	metrics   *Metrics
	wg        sync.WaitGroup
	l         *slog.Logger
	closeChan chan struct{}
	closeFn   func()
	// held for reading while enqueueing, Close takes it to drain the queues
	queueLock sync.RWMutex
}

// NewPriorityRenderer starts the fetch and render workers. Priority tasks
// are always fetched before normal ones.
func NewPriorityRenderer(opts Options, rends []render.ChunkRenderer, regions RegionSetProvider, l *slog.Logger, m *Metrics) *PriorityPipelineRender {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m == nil {
		m = NewMetrics(nil)
	}
	closeChan := make(chan struct{})
	r := &PriorityPipelineRender{
		qnormal:   make(chan renderTask, opts.QueueNormalLen),
		qpriority: make(chan renderTask, opts.QueuePriorityLen),
		qfetched:  make(chan renderTask, opts.QueueFetchedLen),
		rends:     rends,
		regions:   regions,
		metrics:   m,
		wg:        sync.WaitGroup{},
		l:         l,
		closeChan: closeChan,
		closeFn: sync.OnceFunc(func() {
			close(closeChan)
		}),
	}
	rendererThreadCount := max(opts.RendererThreadCount, 1)
	r.wg.Add(rendererThreadCount)
	for i := 0; i < rendererThreadCount; i++ {
		go func() {
			r.workerRender(closeChan)
			r.wg.Done()
		}()
	}
	fetcherThreadCount := max(opts.FetcherThreadCount, 1)
	r.wg.Add(fetcherThreadCount)
	for i := 0; i < fetcherThreadCount; i++ {
		go func() {
			r.workerFetch(closeChan)
			r.wg.Done()
		}()
	}
	return r
}

func (r *PriorityPipelineRender) Renderers() []render.ChunkRenderer {
	return r.rends
}

func (r *PriorityPipelineRender) workerRender(close <-chan struct{}) {
	for {
		select {
		case <-close:
			return
		case w := <-r.qfetched:
			r.render(w)
		}
	}
}

func (r *PriorityPipelineRender) workerFetch(close <-chan struct{}) {
	for {
		select {
		case <-close:
			return
		case w := <-r.qpriority:
			if !r.fetchAndPass(close, w) {
				return
			}
			continue
		default:
		}
		select {
		case <-close:
			return
		case w := <-r.qpriority:
			if !r.fetchAndPass(close, w) {
				return
			}
		case w := <-r.qnormal:
			if !r.fetchAndPass(close, w) {
				return
			}
		}
	}
}

func (r *PriorityPipelineRender) fetchAndPass(close <-chan struct{}, w renderTask) bool {
	r.fetch(&w)
	select {
	case <-close:
		r.deliver(w, nil, ErrClosed)
		return false
	case r.qfetched <- w:
		return true
	}
}

func (r *PriorityPipelineRender) fetch(work *renderTask) {
	t := time.Now()
	defer func() {
		r.metrics.Stages.WithLabelValues("fetch").Observe(time.Since(t).Seconds())
	}()
	if r.regions == nil {
		work.err = fmt.Errorf("no region sets for %s: %w", work.loc, render.ErrChunkNotFound)
		return
	}
	regions, err := r.regions(work.loc)
	if err != nil {
		work.err = err
		return
	}
	work.state = render.NewRenderState(regions, work.loc.X, work.loc.Z)
	work.err = work.state.EnsureLoaded(0, 0, true)
}

func (r *PriorityPipelineRender) render(work renderTask) {
	if work.err != nil {
		r.deliver(work, nil, work.err)
		return
	}
	if work.state == nil {
		r.l.Error("render without data", "loc", work.loc, "id", work.id)
		r.deliver(work, nil, fmt.Errorf("no render state for %s", work.loc))
		return
	}
	t := time.Now()
	img, err := work.rend.Render(work.state)
	r.metrics.Stages.WithLabelValues("render").Observe(time.Since(t).Seconds())
	r.metrics.Loads.Observe(float64(work.state.Loads()))
	r.deliver(work, img, err)
}

func (r *PriorityPipelineRender) deliver(work renderTask, img *image.RGBA, err error) {
	res := RenderResult{
		ID:       work.id,
		Loc:      work.loc,
		Img:      img,
		Err:      err,
		Duration: time.Since(work.started),
	}
	if work.state != nil {
		res.Loads = work.state.Loads()
	}
	outcome := Outcome(err)
	r.metrics.Tiles.WithLabelValues(work.loc.Variant, outcome).Inc()
	if outcome == "error" {
		r.l.Warn("tile render failed", "loc", work.loc, "id", work.id, "err", err)
	} else {
		r.l.Debug("tile rendered", "loc", work.loc, "id", work.id, "outcome", outcome, "loads", res.Loads, "took", res.Duration)
	}
	work.result <- res
}

// Outcome classifies a render error for metrics and HTTP status mapping
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var le *render.LoadError
	if errors.As(err, &le) {
		if le.DX != 0 || le.DZ != 0 {
			return "neighbour"
		}
		if errors.Is(err, render.ErrChunkNotFound) {
			return "missing"
		}
		return "error"
	}
	if errors.Is(err, render.ErrChunkNotFound) {
		return "missing"
	}
	return "error"
}

// Close stops the workers and waits for them. Tasks left in the queues are
// answered with ErrClosed.
func (r *PriorityPipelineRender) Close() {
	r.closeFn()
	r.wg.Wait()
	r.queueLock.Lock()
	defer r.queueLock.Unlock()
	for _, q := range []chan renderTask{r.qpriority, r.qnormal, r.qfetched} {
	drain:
		for {
			select {
			case t := <-q:
				r.deliver(t, nil, ErrClosed)
			default:
				break drain
			}
		}
	}
}

func (r *PriorityPipelineRender) newTask(loc primitives.TileLocation) (renderTask, error) {
	t := renderTask{
		id:      uuid.New(),
		loc:     loc,
		started: time.Now(),
		result:  make(chan RenderResult, 1),
	}
	rend, ok := renderers.FindRenderer(r.rends, loc.Variant)
	if !ok {
		return t, fmt.Errorf("%w %q", ErrUnknownVariant, loc.Variant)
	}
	t.rend = rend
	return t, nil
}

func (r *PriorityPipelineRender) enqueue(ctx context.Context, q chan renderTask, t renderTask) <-chan RenderResult {
	r.queueLock.RLock()
	defer r.queueLock.RUnlock()
	select {
	case <-r.closeChan:
		r.deliver(t, nil, ErrClosed)
		return t.result
	default:
	}
	select {
	case <-ctx.Done():
		r.deliver(t, nil, ctx.Err())
	case <-r.closeChan:
		r.deliver(t, nil, ErrClosed)
	case q <- t:
	}
	return t.result
}

func (r *PriorityPipelineRender) add(ctx context.Context, q chan renderTask, loc primitives.TileLocation) <-chan RenderResult {
	t, err := r.newTask(loc)
	if err != nil {
		r.deliver(t, nil, err)
		return t.result
	}
	return r.enqueue(ctx, q, t)
}

func (r *PriorityPipelineRender) AddToRenderQueue(loc primitives.TileLocation) <-chan RenderResult {
	return r.add(context.Background(), r.qnormal, loc)
}

func (r *PriorityPipelineRender) AddToPriorityRenderQueue(loc primitives.TileLocation) <-chan RenderResult {
	return r.add(context.Background(), r.qpriority, loc)
}

// AddToRenderQueueWithState skips the fetch stage, state must already hold the centre column
func (r *PriorityPipelineRender) AddToRenderQueueWithState(loc primitives.TileLocation, state *render.RenderState) <-chan RenderResult {
	t, err := r.newTask(loc)
	if err != nil {
		r.deliver(t, nil, err)
		return t.result
	}
	t.state = state
	return r.enqueue(context.Background(), r.qfetched, t)
}

// Render draws loc ahead of the normal queue and waits for it
func (r *PriorityPipelineRender) Render(ctx context.Context, loc primitives.TileLocation) RenderResult {
	c := r.add(ctx, r.qpriority, loc)
	select {
	case <-ctx.Done():
		return RenderResult{Loc: loc, Err: ctx.Err()}
	case res := <-c:
		return res
	}
}
