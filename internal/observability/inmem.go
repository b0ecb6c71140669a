package observability

import "sync"

// Inmem keeps a bounded ring of recent observations plus running totals.
// There is no exporter: the engine has no network surface, so this exists
// for the demo binary and tests.
type Inmem struct {
	mu     sync.Mutex
	last   []any
	max    int
	totals struct {
		checkouts        map[string]int
		storageRecovered int
	}
}

func NewInmem(max int) *Inmem {
	m := &Inmem{max: max}
	m.totals.checkouts = make(map[string]int)
	return m
}

func (m *Inmem) push(v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveMutation(op string, durMs float64) {
	m.push(struct {
		Kind string
		Op   string
		Dur  float64
	}{"mutation", op, durMs})
}

func (m *Inmem) ObservePersist(durMs float64, ok bool) {
	m.push(struct {
		Kind string
		Dur  float64
		OK   bool
	}{"persist", durMs, ok})
}

func (m *Inmem) IncCheckout(result string) {
	m.mu.Lock()
	m.totals.checkouts[result]++
	m.mu.Unlock()
}

func (m *Inmem) IncStorageRecovery() {
	m.mu.Lock()
	m.totals.storageRecovered++
	m.mu.Unlock()
}

func (m *Inmem) Recent() []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]any, len(m.last))
	copy(out, m.last)
	return out
}

func (m *Inmem) CheckoutTotal(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.checkouts[result]
}

func (m *Inmem) StorageRecoveries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.storageRecovered
}
