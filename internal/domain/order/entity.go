package order

// Order is one customer order as stored in the realtime tree at
// Order/{userId}/{orderId}. UserID is not a stored field: the reader tags
// each order with the owning branch key while flattening the tree.
type Order struct {
	UserID string `json:"userId,omitempty"`

	OrderID         string      `json:"orderId"`
	Customer        Customer    `json:"customer"`
	OrderItems      []OrderItem `json:"orderItems"`
	OrderTotalPrice float64     `json:"orderTotalPrice"`
	CouponCode      string      `json:"couponCode,omitempty"`
	CouponCodeValue float64     `json:"couponCodeValue"`
	OrderStatus     Status      `json:"orderStatus"`
	Payment         Payment     `json:"payment"`
	Shipping        Shipping    `json:"shipping"`
	OrderDate       string      `json:"orderDate"`
	Notes           string      `json:"notes,omitempty"`
	Donate          float64     `json:"donate"`
	ProcessingFees  float64     `json:"processingFees"`
	Token           string      `json:"token,omitempty"`
}

// Customer identifies who placed the order.
type Customer struct {
	CustomerID   string `json:"customerId"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	PhoneNumber2 string `json:"phoneNumber2,omitempty"`
}

// OrderItem is a denormalized product snapshot taken at checkout. Later
// catalog edits do not propagate into stored orders.
type OrderItem struct {
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	ProductImage       string  `json:"productImage,omitempty"`
	WeightWithSIUnit   string  `json:"weightWithSIUnit,omitempty"`
	Price              float64 `json:"price"`
	MRP                float64 `json:"mrp"`
	SelectableQuantity int     `json:"selectableQuantity"`
}

type Payment struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
}

// Shipping carries the fee as the string the store holds. Consumers parse
// it, treating absent or unparseable values as zero.
type Shipping struct {
	ShippingMethod string  `json:"shippingMethod"`
	ShippingFee    string  `json:"shippingFee"`
	DeliveredData  string  `json:"deliveredData,omitempty"`
	Address        Address `json:"address"`
	ShippingStatus string  `json:"shippingStatus,omitempty"`
}

type Address struct {
	FullName       string `json:"fullName"`
	MobileNumber   string `json:"mobileNumber"`
	FlatHouse      string `json:"flatHouse"`
	Address        string `json:"address"`
	Landmark       string `json:"landmark,omitempty"`
	IsHomeSelected bool   `json:"isHomeSelected"`
}
