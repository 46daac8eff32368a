package models

import "time"

// Product represents a product in the catalog
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	ImageURL     string `json:"imageUrl"`
	IsBestseller bool   `json:"isBestseller,omitempty"`
	IsPopular    bool   `json:"isPopular,omitempty"`
	Details      string `json:"details,omitempty"`
	Stock        *int   `json:"stock,omitempty"`
}

// CartLine is a product snapshot plus the quantity in the cart.
// At most one line exists per product id and quantity is always >= 1.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price x quantity for this line
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// CustomerDetails is the caller-validated checkout input merged into an order
type CustomerDetails struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId,omitempty"`
}

// Order is an immutable record of a placed purchase. Items and TotalAmount
// are frozen at placement time and never recomputed from a live cart.
type Order struct {
	ID            string     `json:"id"`
	Items         []CartLine `json:"items"`
	TotalAmount   int64      `json:"totalAmount"`
	OrderDate     time.Time  `json:"orderDate"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerPhone string     `json:"customerPhone"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId,omitempty"`
}

// Product categories (closed set)
const (
	CategoryCourse       = "Course"
	CategorySubscription = "Subscription"
	CategorySoftware     = "Software"
	CategoryEbook        = "E-book"
)

// Categories returns the closed category set in display order
func Categories() []string {
	return []string{CategoryCourse, CategorySubscription, CategorySoftware, CategoryEbook}
}

// Order statuses. Orders start at PENDING_PAYMENT; later states are set by an
// external administrative process, never by this service. COMPLETED and
// CANCELLED are terminal.
const (
	OrderStatusPendingPayment      = "PENDING_PAYMENT"
	OrderStatusPaymentVerification = "PAYMENT_VERIFICATION"
	OrderStatusProcessing          = "PROCESSING"
	OrderStatusCompleted           = "COMPLETED"
	OrderStatusCancelled           = "CANCELLED"
)

// Payment methods. The transaction id is a user-entered reference for manual
// verification; it is never checked against a provider.
const (
	PaymentMethodNagad = "Nagad"
	PaymentMethodBkash = "bKash"
	PaymentMethodNone  = ""
)
