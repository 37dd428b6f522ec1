package domain

// OrderStatus is the coarse delivery state of an order
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderInTransit  OrderStatus = "in-transit"
	OrderDelivered  OrderStatus = "delivered"
)

// TimelineEvent is one step of an order's delivery history
type TimelineEvent struct {
	Status    string `json:"status"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Order is a tracked customer order
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	Status            OrderStatus     `json:"status"`
	Items             []string        `json:"items"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	CurrentLocation   string          `json:"currentLocation"`
	Timeline          []TimelineEvent `json:"timeline"`
}
