package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("payment method name is required")

// Method is a manual payment destination shown at checkout, such as a bank
// transfer account or a wallet QR code.
type Method struct {
	id          uuid.UUID
	name        string
	accountName string
	number      string
	qrURL       string
	active      bool
	createdAt   time.Time
}

func NewMethod(name, accountName, number, qrURL string, active bool, now time.Time) (*Method, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Method{
		id:          uuid.New(),
		name:        name,
		accountName: accountName,
		number:      number,
		qrURL:       qrURL,
		active:      active,
		createdAt:   now,
	}, nil
}

func ReconstructMethod(id uuid.UUID, name, accountName, number, qrURL string, active bool, createdAt time.Time) *Method {
	return &Method{
		id:          id,
		name:        name,
		accountName: accountName,
		number:      number,
		qrURL:       qrURL,
		active:      active,
		createdAt:   createdAt,
	}
}

func (m *Method) ID() uuid.UUID        { return m.id }
func (m *Method) Name() string         { return m.name }
func (m *Method) AccountName() string  { return m.accountName }
func (m *Method) Number() string       { return m.number }
func (m *Method) QRURL() string        { return m.qrURL }
func (m *Method) Active() bool         { return m.active }
func (m *Method) CreatedAt() time.Time { return m.createdAt }
