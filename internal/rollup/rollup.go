// Package rollup holds the arithmetic behind the three derived monetary
// fields: an event's amount, an order's total, and an order's outstanding
// balance. The functions are pure; fetching and persisting rows is the
// caller's concern.
package rollup

// MenuLine is the priced portion of a menu row
type MenuLine struct {
	Price    float64
	Quantity int
}

// EventAmount returns the sum of price*quantity over the event's menus.
// An empty set yields 0.
func EventAmount(lines []MenuLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// OrderTotal returns the sum of the given event amounts
func OrderTotal(amounts []float64) float64 {
	var total float64
	for _, a := range amounts {
		total += a
	}
	return total
}

// OrderBalance returns the order total minus the given payment amounts,
// floored at zero. Overpayment is not represented as a negative balance.
func OrderBalance(total float64, payments []float64) float64 {
	paid := 0.0
	for _, p := range payments {
		paid += p
	}
	balance := total - paid
	if balance < 0 {
		return 0
	}
	return balance
}
