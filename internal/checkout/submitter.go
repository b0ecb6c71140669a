package checkout

import (
	"context"
	"time"

	"github.com/artisanhome/cartengine/internal/domain"
)

// Receipt is what a submission backend returns.
type Receipt struct {
	OrderID    string
	AcceptedAt time.Time
}

// Submitter is the single seam for a future server integration. The engine
// only ever talks to it here.
type Submitter interface {
	SubmitOrder(ctx context.Context, order *domain.Order) (*Receipt, error)
}

// LocalSubmitter accepts every order locally. No network call exists.
type LocalSubmitter struct{}

func (LocalSubmitter) SubmitOrder(_ context.Context, order *domain.Order) (*Receipt, error) {
	return &Receipt{OrderID: order.ID, AcceptedAt: time.Now()}, nil
}
