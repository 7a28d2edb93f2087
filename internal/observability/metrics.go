package observability

type Metrics interface {
	ObserveAction(action string, durMs float64, ok bool)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveKafka(processMs float64, ok bool)
	ObserveCheckout(items int, total int64)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveAction(string, float64, bool)      {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveKafka(float64, bool)               {}
func (Noop) ObserveCheckout(int, int64)               {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
