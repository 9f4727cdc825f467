package cargo

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// DefaultCurrency is assumed when callers do not specify one.
const DefaultCurrency = "USD"

// ErrMoneyIsNotConstructed is returned when using a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is a non-negative monetary amount with a currency code.
// It represents declared values and computed charges; negative amounts are
// rejected at construction.
type Money struct { //nolint:recvcheck //using for validation
	amount   float64
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value. Amount must be >= 0. An empty currency
// defaults to DefaultCurrency.
func NewMoney(amount float64, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := money.setAmount(amount); err != nil {
		return Money{}, err
	}

	if currency == "" {
		currency = DefaultCurrency
	}
	money.currency = currency

	return money, nil
}

// Validate checks that the value was created through its constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}

func (m *Money) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%g is negative", amount))
	}

	m.amount = amount
	return nil
}
