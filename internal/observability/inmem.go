package observability

import "sync"

type observe struct {
	Kind   string
	Name   string
	Status int
	Dur    float64
	OK     bool
	Value  int64
}

type Totals struct {
	CacheHits, CacheMiss int
	Checkouts            int
}

// Inmem keeps the last max observations and running totals; useful for tests and /debug.
type Inmem struct {
	mu     sync.Mutex
	last   []observe
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveAction(action string, durMs float64, ok bool) {
	m.push(observe{Kind: "action", Name: action, Dur: durMs, OK: ok})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(observe{Kind: "http", Name: method + " " + route, Status: status, Dur: durMs})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(observe{Kind: "kafka", Dur: processMs, OK: ok})
}

func (m *Inmem) ObserveCheckout(items int, total int64) {
	m.mu.Lock()
	m.totals.Checkouts++
	m.mu.Unlock()
	m.push(observe{Kind: "checkout", Status: items, Value: total, OK: true})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.CacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.CacheMiss++
	m.mu.Unlock()
}

func (m *Inmem) Totals() Totals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals
}

// Kinds lists the kinds of the retained observations, oldest first.
func (m *Inmem) Kinds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.last))
	for _, o := range m.last {
		out = append(out, o.Kind)
	}
	return out
}
