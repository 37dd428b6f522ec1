package usecase

import (
	"fmt"
	"strings"

	"github.com/aromax/storefront/internal/domain"
)

// DeliveryTracker looks up orders from a fixed list
type DeliveryTracker struct {
	orders []domain.Order
}

// NewDeliveryTracker creates a tracker. A nil list uses the demo orders.
func NewDeliveryTracker(orders []domain.Order) *DeliveryTracker {
	if orders == nil {
		orders = demoOrders()
	}
	return &DeliveryTracker{orders: orders}
}

// Orders returns every tracked order
func (t *DeliveryTracker) Orders() []domain.Order {
	out := make([]domain.Order, len(t.orders))
	for i, o := range t.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// Track finds an order by its tracking number, ignoring case
func (t *DeliveryTracker) Track(orderNumber string) (*domain.Order, error) {
	want := strings.TrimSpace(orderNumber)
	if want == "" {
		return nil, fmt.Errorf("%w: empty tracking number", domain.ErrInvalidRequest)
	}

	for _, o := range t.orders {
		if strings.EqualFold(o.OrderNumber, want) {
			found := cloneOrder(o)
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, want)
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]string(nil), o.Items...)
	o.Timeline = append([]domain.TimelineEvent(nil), o.Timeline...)
	return o
}

// timeline builds the six standard steps, the first done of them completed
func timeline(done int, dates ...string) []domain.TimelineEvent {
	steps := []string{"Order Confirmed", "Processing", "Shipped", "In Transit", "Out for Delivery", "Delivered"}
	events := make([]domain.TimelineEvent, len(steps))
	for i, s := range steps {
		events[i] = domain.TimelineEvent{Status: s, Date: dates[i], Completed: i < done}
	}
	return events
}

func demoOrders() []domain.Order {
	return []domain.Order{
		{
			ID:                "1",
			OrderNumber:       "ARO-ABC123XYZ",
			Status:            domain.OrderInTransit,
			Items:             []string{"Midnight Bloom", "Citrus Dawn"},
			EstimatedDelivery: "Dec 15, 2024",
			CurrentLocation:   "Distribution Center, Chicago, IL",
			Timeline: timeline(4,
				"Dec 10, 2024", "Dec 11, 2024", "Dec 12, 2024", "Dec 13, 2024", "Dec 15, 2024", "Dec 15, 2024"),
		},
		{
			ID:                "2",
			OrderNumber:       "ARO-DEF456UVW",
			Status:            domain.OrderDelivered,
			Items:             []string{"Velvet Noir"},
			EstimatedDelivery: "Dec 8, 2024",
			CurrentLocation:   "Delivered to recipient",
			Timeline: timeline(6,
				"Dec 3, 2024", "Dec 4, 2024", "Dec 5, 2024", "Dec 6, 2024", "Dec 8, 2024", "Dec 8, 2024"),
		},
		{
			ID:                "3",
			OrderNumber:       "ARO-GHI789RST",
			Status:            domain.OrderProcessing,
			Items:             []string{"Ocean Breeze", "Lavender Dreams", "Rose Garden"},
			EstimatedDelivery: "Dec 18, 2024",
			CurrentLocation:   "Warehouse, New York, NY",
			Timeline: timeline(2,
				"Dec 12, 2024", "Dec 13, 2024", "Dec 14, 2024", "Dec 15, 2024", "Dec 18, 2024", "Dec 18, 2024"),
		},
	}
}
