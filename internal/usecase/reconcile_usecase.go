package usecase

import "context"

// ReconcileUsecase detects and repairs partial cross-store writes.
type ReconcileUsecase interface {
	// ReconcileOrder checks a single order.
	ReconcileOrder(ctx context.Context, orderID uint) (*ReconcileReport, error)
	// ReconcileAll sweeps every store, paging orders by batchSize.
	ReconcileAll(ctx context.Context, batchSize int) (*ReconcileReport, error)
}

// --- Output DTOs ---

// ReconcileReport counts what a sweep found and fixed.
type ReconcileReport struct {
	OrdersChecked         int    `json:"orders_checked"`
	DanglingAddressOrders []uint `json:"dangling_address_orders"`
	RepairedLineOrders    []uint `json:"repaired_line_orders"`
	LinesRepaired         int64  `json:"lines_repaired"`
	UnreferencedPayments  []uint `json:"unreferenced_payments"`
	MultipleOpenOrders    []uint `json:"multiple_open_order_users"`
	MissingItems          []uint `json:"missing_items"`
	MissingUsers          []uint `json:"missing_users"`
}

// Faults returns the number of findings.
func (r *ReconcileReport) Faults() int {
	return len(r.DanglingAddressOrders) + len(r.RepairedLineOrders) + len(r.UnreferencedPayments) +
		len(r.MultipleOpenOrders) + len(r.MissingItems) + len(r.MissingUsers)
}

// Merge adds other's findings to r.
func (r *ReconcileReport) Merge(other *ReconcileReport) {
	r.OrdersChecked += other.OrdersChecked
	r.DanglingAddressOrders = append(r.DanglingAddressOrders, other.DanglingAddressOrders...)
	r.RepairedLineOrders = append(r.RepairedLineOrders, other.RepairedLineOrders...)
	r.LinesRepaired += other.LinesRepaired
	r.UnreferencedPayments = append(r.UnreferencedPayments, other.UnreferencedPayments...)
	r.MultipleOpenOrders = append(r.MultipleOpenOrders, other.MultipleOpenOrders...)
	r.MissingItems = append(r.MissingItems, other.MissingItems...)
	r.MissingUsers = append(r.MissingUsers, other.MissingUsers...)
}
