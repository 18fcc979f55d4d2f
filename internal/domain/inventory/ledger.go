package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrOutOfStock    = errors.New("no available stock")
	ErrNegativeStock = errors.New("stock counters cannot be negative")
)

// Entry is the per-product counter pair of a day ledger. The price is a
// snapshot taken when the admin saves stock; orders copy it so later price
// edits never rewrite history.
type Entry struct {
	ProductID  uuid.UUID
	Available  int
	Sold       int
	PriceCents int64
}

func NewEntry(productID uuid.UUID, available int, priceCents int64) (Entry, error) {
	if available < 0 {
		return Entry{}, ErrNegativeStock
	}
	return Entry{ProductID: productID, Available: available, PriceCents: priceCents}, nil
}

// Reserve moves one unit from available to sold. The sum of the two counters
// is conserved; a reservation against zero stock fails without mutation.
func (e Entry) Reserve() (Entry, error) {
	if e.Available <= 0 {
		return e, ErrOutOfStock
	}
	e.Available--
	e.Sold++
	return e, nil
}

// Release reverses Reserve. Sold is floored at zero so an inconsistent
// counter (admin edit between reserve and release) cannot drive it negative.
func (e Entry) Release() Entry {
	e.Available++
	if e.Sold > 0 {
		e.Sold--
	}
	return e
}

func (e Entry) Total() int {
	return e.Available + e.Sold
}

// Ledger is a day's stock, keyed by product. Absent product keys carry
// zero-stock semantics: reservable never, listable as sold out.
type Ledger struct {
	day     Day
	entries map[uuid.UUID]Entry
}

func NewLedger(day Day, entries []Entry) *Ledger {
	m := make(map[uuid.UUID]Entry, len(entries))
	for _, e := range entries {
		m[e.ProductID] = e
	}
	return &Ledger{day: day, entries: m}
}

func (l *Ledger) Day() Day {
	return l.day
}

func (l *Ledger) Entry(productID uuid.UUID) (Entry, bool) {
	e, ok := l.entries[productID]
	return e, ok
}

func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	return out
}

// Reserve applies the entry-level reservation inside the ledger. A missing
// product key is treated as zero stock, not as a distinct error.
func (l *Ledger) Reserve(productID uuid.UUID) (Entry, error) {
	e, ok := l.entries[productID]
	if !ok {
		return Entry{}, ErrOutOfStock
	}
	reserved, err := e.Reserve()
	if err != nil {
		return Entry{}, err
	}
	l.entries[productID] = reserved
	return reserved, nil
}

// Release returns one unit for the product, creating the entry if an admin
// deleted it mid-flight so no decrement is ever silently lost.
func (l *Ledger) Release(productID uuid.UUID) Entry {
	e := l.entries[productID]
	e.ProductID = productID
	released := e.Release()
	l.entries[productID] = released
	return released
}
