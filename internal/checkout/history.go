package checkout

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/artisanhome/cartengine/internal/domain"
)

// History keeps the most recent confirmations so a dismissed one can be
// re-shown by order number. Bounded; old entries fall off.
type History struct {
	lru *lru.Cache[string, domain.Confirmation]
}

func NewHistory(size int) (*History, error) {
	c, err := lru.New[string, domain.Confirmation](size)
	if err != nil {
		return nil, err
	}
	return &History{lru: c}, nil
}

func (h *History) Add(conf domain.Confirmation) {
	h.lru.Add(conf.OrderNumber, conf)
}

func (h *History) Get(orderNumber string) (domain.Confirmation, bool) {
	return h.lru.Get(orderNumber)
}

func (h *History) Len() int {
	return h.lru.Len()
}
