package booking

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PaymentMethod is the closed set of payment options offered by the payment
// page.  No method talks to a gateway.
type PaymentMethod string

const (
	CreditCard  PaymentMethod = "credit-card"
	MercadoPago PaymentMethod = "mercado-pago"
)

// PaymentMethods lists the options in display order.
var PaymentMethods = []PaymentMethod{CreditCard, MercadoPago}

var paymentLabels = map[PaymentMethod]string{
	CreditCard:  "Tarjeta de Crédito/Débito",
	MercadoPago: "Mercado Pago",
}

// Label is the display name of the method.
func (m PaymentMethod) Label() string { return paymentLabels[m] }

// ParsePaymentMethod maps a form value to a method.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.TrimSpace(raw))
	_, ok := paymentLabels[m]
	return m, ok
}

// Pricing is flat: every seat costs UnitPrice pesos.
const (
	UnitPrice = 1500
	Currency  = "ARS"
)

var pricePrinter = message.NewPrinter(language.MustParse("es-AR"))

// Total is seatCount × UnitPrice.
func Total(seatCount int) int {
	return seatCount * UnitPrice
}

// FormatARS renders an amount in pesos with the es-AR digit grouping.
func FormatARS(amount int) string {
	return Currency + " $" + pricePrinter.Sprintf("%d", amount)
}

// Summary is what the payment page shows before the method is chosen.
type Summary struct {
	Context
	Seats []string
	Total int
}

// NewSummary prices a resolved checkout.
func NewSummary(bc Context, seats []string) Summary {
	return Summary{Context: bc, Seats: seats, Total: Total(len(seats))}
}

// FormattedTotal is the total ready for display.
func (s Summary) FormattedTotal() string { return FormatARS(s.Total) }

// SeatList joins the seats for display.
func (s Summary) SeatList() string { return strings.Join(s.Seats, ", ") }

// PaymentForm is the state of the payment method picker.  The zero value has
// nothing selected.
type PaymentForm struct {
	Method PaymentMethod
}

// Select records the chosen method; unknown values clear the selection.
func (f *PaymentForm) Select(raw string) {
	m, ok := ParsePaymentMethod(raw)
	if !ok {
		m = ""
	}
	f.Method = m
}

// CanConfirm reports whether a method has been selected.
func (f PaymentForm) CanConfirm() bool {
	_, ok := paymentLabels[f.Method]
	return ok
}

// Selected reports whether m is the current choice.
func (f PaymentForm) Selected(m PaymentMethod) bool { return f.Method == m }

// Confirm validates the chosen payment method.  An empty or unknown value
// yields ErrNoPaymentMethod.
func (s Summary) Confirm(rawMethod string) (Receipt, error) {
	var f PaymentForm
	f.Select(rawMethod)
	if !f.CanConfirm() {
		return Receipt{}, ErrNoPaymentMethod
	}
	return Receipt{Summary: s, Method: f.Method}, nil
}

// Receipt is the simulated outcome of a confirmed payment.
type Receipt struct {
	Summary
	Method PaymentMethod
}

// Message is the confirmation text shown to the user.
func (r Receipt) Message() string {
	return fmt.Sprintf("Booking confirmed! Movie: %s. Cinema: %s. Time: %s. Seats: %s. Payment method: %s. Total: %s. (Demo only, no real payment was made.)",
		r.Movie.Title, r.Cinema.Name, r.Selection.Time, r.SeatList(), r.Method.Label(), r.FormattedTotal())
}
