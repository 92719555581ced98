package computation

import (
	"container/list"
	"sync"
	"time"

	"github.com/ygrebnov/computation/metrics"
	"github.com/ygrebnov/computation/slotpool"
)

// resultSlot is a ledger entry: (id, optional value). Created when a
// request is accepted; transitions from empty to filled exactly once, or
// is removed by abort.
type resultSlot struct {
	id          uint64
	value       float64
	filled      bool
	submittedAt time.Time
}

// Manager is the ComputationManager: a monitor mediating deferred, typed
// computations between clients (RequestComputation, AbortComputation,
// GetNextResult) and compute engines (GetWork, ContinueWork,
// ProvideResult). All public operations execute mutually exclusively
// under mu; no operation performs blocking I/O while holding it.
//
// The zero value is not usable; construct with New or NewOptions.
type Manager struct {
	mu sync.Mutex

	maxQueueSize int

	queues [numComputationTypes]*list.List // of *Request, FIFO per type

	emptyQueue [numComputationTypes]*sync.Cond // engines wait here for work
	fullQueue  [numComputationTypes]*sync.Cond // clients wait here for queue space

	ledger     *list.List               // of *resultSlot, submission order
	slotByID   map[uint64]*list.Element // ledger lookup
	queuedByID map[uint64]*list.Element // per-type queue lookup

	resultReady *sync.Cond // clients wait here for a deliverable head result

	nextID  uint64
	stopped bool

	metrics metricsHooks
	slots   slotpool.Pool[*resultSlot]
}

// metricsHooks bundles the optional instruments recorded under the
// monitor. A nil Provider yields a no-op set, so Manager.metrics is
// always safe to use unconditionally.
type metricsHooks struct {
	queueDepth        *metrics.CategoryUpDownCounters
	requestsSubmitted metrics.Counter
	resultsDelivered  metrics.Counter
	aborts            metrics.Counter
	dispatchLatency   metrics.Histogram
}

func newMetricsHooks(p metrics.Provider) metricsHooks {
	if p == nil {
		p = metrics.NewNoopProvider()
	}
	return metricsHooks{
		queueDepth: metrics.NewCategoryUpDownCounters(
			p, "computation_queue_depth", numComputationTypes,
			func(t int) string { return ComputationType(t).String() },
		),
		requestsSubmitted: p.Counter("computation_requests_submitted"),
		resultsDelivered:  p.Counter("computation_results_delivered"),
		aborts:            p.Counter("computation_aborts"),
		dispatchLatency: p.Histogram(
			"computation_dispatch_latency_seconds",
			metrics.WithUnit("seconds"),
			metrics.WithDescription("time between RequestComputation and the matching GetNextResult delivery"),
		),
	}
}

// newManager builds a Manager from a validated config. Unexported: New
// and NewOptions are the only public constructors.
func newManager(cfg *Config) *Manager {
	newSlot := func() *resultSlot { return &resultSlot{} }

	var slots slotpool.Pool[*resultSlot]
	if cfg.FixedSlotPoolSize > 0 {
		slots = slotpool.NewFixed(cfg.FixedSlotPoolSize, newSlot)
	} else {
		slots = slotpool.NewDynamic(newSlot)
	}

	m := &Manager{
		maxQueueSize: int(cfg.MaxQueueSize),
		ledger:       list.New(),
		slotByID:     make(map[uint64]*list.Element),
		queuedByID:   make(map[uint64]*list.Element),
		metrics:      newMetricsHooks(cfg.Metrics),
		slots:        slots,
	}
	for t := 0; t < numComputationTypes; t++ {
		m.queues[t] = list.New()
		m.emptyQueue[t] = sync.NewCond(&m.mu)
		m.fullQueue[t] = sync.NewCond(&m.mu)
	}
	m.resultReady = sync.NewCond(&m.mu)
	return m
}

// RequestComputation appends c to the matching per-type queue and to the
// result ledger, returning the assigned id. It blocks while the queue for
// c.Type is at capacity.
//
// Returns ErrStopped if, upon entry or upon wakeup, the Manager has been
// stopped.
func (m *Manager) RequestComputation(c Computation) (uint64, error) {
	if !c.Type.valid() {
		return 0, ErrUnknownComputationType
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := c.Type
	for m.queues[t].Len() >= m.maxQueueSize && !m.stopped {
		m.fullQueue[t].Wait()
	}
	if m.stopped {
		m.fullQueue[t].Signal() // chain-wake any sibling waiter
		return 0, ErrStopped
	}

	id := m.nextID
	m.nextID++

	req := &Request{ID: id, Computation: c}
	qelem := m.queues[t].PushBack(req)
	m.queuedByID[id] = qelem

	slot := m.slots.Get()
	*slot = resultSlot{id: id, submittedAt: time.Now()}
	lelem := m.ledger.PushBack(slot)
	m.slotByID[id] = lelem

	m.metrics.queueDepth.Inc(int(t))
	m.metrics.requestsSubmitted.Add(1)

	m.emptyQueue[t].Signal()

	return id, nil
}

// GetNextResult blocks until the oldest surviving submission's result is
// available, then removes it from the ledger and returns it. Aborted
// entries at the head are elided transparently: a wakeup re-inspects the
// (possibly new) head.
//
// Returns ErrStopped only when this call would otherwise have to block;
// an already-filled head is delivered even if the Manager is concurrently
// stopped.
func (m *Manager) GetNextResult() (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for !m.headReady() {
		if m.stopped {
			m.resultReady.Signal() // chain-wake any sibling waiter
			return Result{}, ErrStopped
		}
		m.resultReady.Wait()
	}

	head := m.ledger.Front()
	slot := head.Value.(*resultSlot)
	m.ledger.Remove(head)
	delete(m.slotByID, slot.id)

	m.metrics.resultsDelivered.Add(1)
	m.metrics.dispatchLatency.Record(time.Since(slot.submittedAt).Seconds())

	result := Result{ID: slot.id, Value: slot.value}
	m.slots.Put(slot)

	return result, nil
}

func (m *Manager) headReady() bool {
	head := m.ledger.Front()
	return head != nil && head.Value.(*resultSlot).filled
}

// AbortComputation removes id from whichever structure still holds it: a
// per-type queue (if not yet dispatched) or the ledger (if dispatched but
// not yet delivered). Unknown ids are a silent no-op, making abort
// idempotent and race-tolerant.
func (m *Manager) AbortComputation(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if qelem, ok := m.queuedByID[id]; ok {
		req := qelem.Value.(*Request)
		t := req.Type
		m.queues[t].Remove(qelem)
		delete(m.queuedByID, id)
		m.metrics.queueDepth.Dec(int(t))

		if lelem, ok := m.slotByID[id]; ok {
			m.ledger.Remove(lelem)
			delete(m.slotByID, id)
			m.slots.Put(lelem.Value.(*resultSlot))
		}

		m.metrics.aborts.Add(1)
		m.fullQueue[t].Signal()
		// the removed slot may have been the head blocking a filled successor.
		m.resultReady.Signal()
		return
	}

	if lelem, ok := m.slotByID[id]; ok {
		slot := lelem.Value.(*resultSlot)
		wasEmpty := !slot.filled
		m.ledger.Remove(lelem)
		delete(m.slotByID, id)
		m.slots.Put(slot)

		m.metrics.aborts.Add(1)
		if wasEmpty {
			// the removed entry may have been blocking head progress.
			m.resultReady.Signal()
		}
		return
	}

	// unknown id: already delivered or already aborted; no-op.
}

// GetWork blocks until a Request of the given type is available, then
// removes it from the head of that type's queue and returns it. The
// corresponding ledger slot stays in place (empty), marking the id
// in-flight.
//
// Returns ErrStopped unconditionally once stopped, even if the queue is
// non-empty: dispatch is an admission act paired with RequestComputation,
// and stop must not hand out new work once issued.
func (m *Manager) GetWork(t ComputationType) (Request, error) {
	if !t.valid() {
		return Request{}, ErrUnknownComputationType
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for m.queues[t].Len() == 0 && !m.stopped {
		m.emptyQueue[t].Wait()
	}
	if m.stopped {
		m.emptyQueue[t].Signal() // chain-wake any sibling waiter
		return Request{}, ErrStopped
	}

	elem := m.queues[t].Front()
	req := elem.Value.(*Request)
	m.queues[t].Remove(elem)
	delete(m.queuedByID, req.ID)

	m.metrics.queueDepth.Dec(int(t))

	m.fullQueue[t].Signal()

	return *req, nil
}

// ContinueWork reports whether the computation identified by id is still
// live: false if the Manager is stopped, or if id's ledger slot was
// removed by AbortComputation. An engine is expected to poll this
// cooperatively and terminate voluntarily. Non-blocking.
func (m *Manager) ContinueWork(id uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return false
	}
	_, ok := m.slotByID[id]
	return ok
}

// ProvideResult fills the ledger slot for r.ID with r.Value and wakes any
// client waiting in GetNextResult. If the slot is absent (the computation
// was aborted while in flight), the result is silently dropped.
// Non-blocking.
func (m *Manager) ProvideResult(r Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.slotByID[r.ID]
	if !ok {
		return // aborted while computing: drop.
	}
	slot := elem.Value.(*resultSlot)
	slot.value = r.Value
	slot.filled = true

	m.resultReady.Signal()
}

// Stop marks the Manager stopped and wakes every waiter across all
// condition variables. Idempotent: repeated calls are harmless. After
// Stop, every currently blocked thread and every future blocking call on
// RequestComputation, GetWork, or GetNextResult fails with ErrStopped
// (subject to GetNextResult's already-ready-head carve-out); ContinueWork
// returns false; ProvideResult and AbortComputation continue to operate
// on surviving state.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	m.stopped = true

	m.resultReady.Signal()
	for t := 0; t < numComputationTypes; t++ {
		m.emptyQueue[t].Signal()
		m.fullQueue[t].Signal()
	}
}
