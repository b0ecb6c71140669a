package observability

type Metrics interface {
	ObserveMutation(op string, durMs float64)
	ObservePersist(durMs float64, ok bool)
	IncCheckout(result string)
	IncStorageRecovery()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveMutation(string, float64) {}
func (Noop) ObservePersist(float64, bool)    {}
func (Noop) IncCheckout(string)              {}
func (Noop) IncStorageRecovery()             {}
