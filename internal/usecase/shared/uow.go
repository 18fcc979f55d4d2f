package shared

import (
	"context"
	"time"

	"organic-storefront/internal/domain/banner"
	"organic-storefront/internal/domain/catalog"
	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/domain/payment"
	"organic-storefront/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Inventory() InventoryRepository
	Banners() BannerRepository
	Products() ProductRepository
	PaymentMethods() PaymentMethodRepository
	Audit() AuditRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	// HeldOrdersCreatedBefore returns stock-holding orders older than the
	// cutoff, for the expiry sweeper.
	HeldOrdersCreatedBefore(ctx context.Context, cutoff time.Time) ([]OrderSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	BannerByID(ctx context.Context, id uuid.UUID) (*BannerSnapshot, error)
	AllBanners(ctx context.Context) ([]BannerSnapshot, error)
}

// Minimal snapshots for command read operations.
type OrderSnapshot struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Day           inventory.Day
	PriceCents    int64
	Status        order.Status
	ReceiptURL    *string
	CancelReason  *order.CancelReason
	CustomerName  string
	CustomerPhone string
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	VerifiedAt    *time.Time
	CancelledAt   *time.Time
}

// ToDomain rehydrates the order entity so commands can run its transitions.
func (s *OrderSnapshot) ToDomain() *order.Order {
	return order.ReconstructOrder(
		s.ID, s.ProductID, s.Day, s.PriceCents, s.Status,
		s.ReceiptURL, s.CancelReason,
		s.CustomerName, s.CustomerPhone, s.Note,
		s.CreatedAt, s.UpdatedAt,
		s.VerifiedAt, s.CancelledAt,
	)
}

type ProductSnapshot struct {
	ID         uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	PriceCents int64
	Visible    bool
}

type BannerSnapshot struct {
	ID        uuid.UUID
	Title     string
	ImageURL  string
	LinkURL   string
	SortOrder int
	Active    bool
	StartAt   *time.Time
	EndAt     *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *BannerSnapshot) ToDomain() *banner.Banner {
	return banner.ReconstructBanner(
		s.ID, s.Title, s.ImageURL, s.LinkURL, s.SortOrder,
		s.Active, s.StartAt, s.EndAt, s.CreatedAt, s.UpdatedAt,
	)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	// UpdateState persists a transition. The write is guarded by the status
	// the caller loaded, so concurrent transitions surface as CONFLICT
	// instead of silently overwriting each other.
	UpdateState(ctx context.Context, tx db.DBTX, o *order.Order, loaded order.Status) error
}

type InventoryRepository interface {
	// ReserveEntry atomically moves one unit from available to sold and
	// returns the entry's price snapshot. NOT_FOUND means the day has no
	// ledger at all; CONFLICT means the product is sold out.
	ReserveEntry(ctx context.Context, tx db.DBTX, day inventory.Day, productID uuid.UUID) (int64, error)
	// ReleaseEntry returns one unit to the ledger, recreating the row if an
	// admin removed it while the order was in flight.
	ReleaseEntry(ctx context.Context, tx db.DBTX, day inventory.Day, productID uuid.UUID, priceCents int64) error
	// UpsertEntry writes available and price for a day's product while
	// preserving any sold counter already accumulated.
	UpsertEntry(ctx context.Context, tx db.DBTX, day inventory.Day, productID uuid.UUID, available int, priceCents int64) error
	DeleteEntriesExcept(ctx context.Context, tx db.DBTX, day inventory.Day, keep []uuid.UUID) error
}

type BannerRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *banner.Banner) error
	Update(ctx context.Context, tx db.DBTX, b *banner.Banner) error
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool, updatedAt time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *catalog.Product) error
	Update(ctx context.Context, tx db.DBTX, p *catalog.Product) error
}

type PaymentMethodRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *payment.Method) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type AuditRepository interface {
	Append(ctx context.Context, tx db.DBTX, entry AuditEntry) error
}

type AuditEntry struct {
	Actor      string
	Action     string
	EntityKind string
	EntityID   string
	Detail     []byte
	At         time.Time
}
