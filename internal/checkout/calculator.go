package checkout

import (
	"errors"
	"sort"

	"github.com/fjod/go_marketplace/internal/cart"
	"github.com/fjod/go_marketplace/internal/domain"
)

var (
	ErrNotAuthorized      = errors.New("session is not an authorized user")
	ErrUnknownPaymentMode = errors.New("unknown payment mode")
)

// Lookup resolves a product by ID. Implemented by catalog.Store.
// Consumers define this interface, not the catalogue implementation.
type Lookup interface {
	Lookup(productID int) (domain.Product, bool)
}

// SessionStore is the slice of the session registry the calculator needs.
type SessionStore interface {
	IsUser(token string) bool
	CartFor(token string) (*cart.Cart, error)
}

// Outcome is the result of a successful checkout calculation: either a
// payable total under the chosen mode, or a nothing-payable marker when the
// total is exactly zero.
type Outcome struct {
	Total          int
	ModeName       string
	NothingPayable bool

	// MissingProducts lists cart entries that did not resolve in the
	// catalogue. They contribute zero to the total; the reference system
	// silently prices them at zero, so the total is unaffected either way.
	MissingProducts []int
}

// Calculator computes payable totals for session carts. Checkout mutates
// nothing: the cart is not cleared and no order record is created.
type Calculator struct {
	sessions SessionStore
	catalog  Lookup
	modes    domain.PaymentModes
}

// NewCalculator creates a calculator over the given collaborators. The mode
// set is fixed at construction and treated as immutable.
func NewCalculator(sessions SessionStore, catalog Lookup, modes domain.PaymentModes) *Calculator {
	return &Calculator{
		sessions: sessions,
		catalog:  catalog,
		modes:    modes,
	}
}

// Modes returns a copy of the configured payment mode set.
func (c *Calculator) Modes() domain.PaymentModes {
	modes := make(domain.PaymentModes, len(c.modes))
	for key, name := range c.modes {
		modes[key] = name
	}
	return modes
}

// Checkout computes the payable total for the session's cart under the given
// payment mode.
func (c *Calculator) Checkout(token, mode string) (*Outcome, error) {
	if !c.sessions.IsUser(token) {
		return nil, ErrNotAuthorized
	}

	modeName, ok := c.modes[mode]
	if !ok {
		return nil, ErrUnknownPaymentMode
	}

	sessionCart, err := c.sessions.CartFor(token)
	if err != nil {
		return nil, err
	}

	total := 0
	var missing []int
	for _, item := range sessionCart.Items() {
		product, found := c.catalog.Lookup(item.ProductID)
		if !found {
			missing = append(missing, item.ProductID)
		}
		total += product.Price * item.Quantity
	}
	sort.Ints(missing)

	if total == 0 {
		return &Outcome{NothingPayable: true, MissingProducts: missing}, nil
	}
	return &Outcome{Total: total, ModeName: modeName, MissingProducts: missing}, nil
}
