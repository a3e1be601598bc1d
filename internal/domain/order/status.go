package order

import "strings"

// Status is the closed order status enum. Values match the strings stored
// in the realtime tree.
type Status string

const (
	StatusProcessing           Status = "Processing"
	StatusConfirmed            Status = "Confirmed"
	StatusOutForDelivery       Status = "Out for Delivery"
	StatusDelivered            Status = "Delivered"
	StatusCancelled            Status = "Cancelled"
	StatusCustomerRejected     Status = "Customer Rejected"
	StatusCustomerNotAvailable Status = "Customer Not Available"
)

// AllStatuses is the render order for status selectors. Processing comes
// first because it is the initial status of every new order.
var AllStatuses = []Status{
	StatusProcessing,
	StatusConfirmed,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
	StatusCustomerRejected,
	StatusCustomerNotAvailable,
}

// StatusMeta is display metadata attached to each status.
type StatusMeta struct {
	Label string
	Tone  string
}

// statusMeta is the compile-time lookup table. Every member of AllStatuses
// has an entry.
var statusMeta = map[Status]StatusMeta{
	StatusProcessing:           {Label: "Processing", Tone: "warning"},
	StatusConfirmed:            {Label: "Confirmed", Tone: "info"},
	StatusOutForDelivery:       {Label: "Out for Delivery", Tone: "info"},
	StatusDelivered:            {Label: "Delivered", Tone: "success"},
	StatusCancelled:            {Label: "Cancelled", Tone: "danger"},
	StatusCustomerRejected:     {Label: "Customer Rejected", Tone: "danger"},
	StatusCustomerNotAvailable: {Label: "Customer Not Available", Tone: "warning"},
}

func (s Status) Meta() StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: string(s)}
}

func (s Status) IsValid() bool {
	_, ok := statusMeta[s]
	return ok
}

// ParseStatus maps raw input onto the enum. Whitespace is trimmed; the
// match itself is exact, including case.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.TrimSpace(raw))
	if s.IsValid() {
		return s, true
	}
	return "", false
}
