package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/infra/readstore"
	"organic-storefront/internal/infra/repository"
	"organic-storefront/internal/pkg/errs"
	"organic-storefront/internal/usecase/queries"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	orderRepo         shared.OrderRepository
	inventoryRepo     shared.InventoryRepository
	bannerRepo        shared.BannerRepository
	productRepo       shared.ProductRepository
	paymentMethodRepo shared.PaymentMethodRepository
	auditRepo         shared.AuditRepository
	commandReads      shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository()
	}
	return t.orderRepo
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository()
	}
	return t.inventoryRepo
}

func (t *pgTx) Banners() shared.BannerRepository {
	if t.bannerRepo == nil {
		t.bannerRepo = repository.NewBannerRepository()
	}
	return t.bannerRepo
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository()
	}
	return t.productRepo
}

func (t *pgTx) PaymentMethods() shared.PaymentMethodRepository {
	if t.paymentMethodRepo == nil {
		t.paymentMethodRepo = repository.NewPaymentMethodRepository()
	}
	return t.paymentMethodRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository()
	}
	return t.auditRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	orderStore   *readstore.OrderReadStore
	catalogStore *readstore.CatalogReadStore
	bannerStore  *readstore.BannerReadStore
}

func (r *commandReads) orders() *readstore.OrderReadStore {
	if r.orderStore == nil {
		r.orderStore = readstore.NewOrderReadStore(r.dbtx)
	}
	return r.orderStore
}

func (r *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	view, err := r.orders().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return orderSnapshotFromView(view)
}

func (r *commandReads) HeldOrdersCreatedBefore(ctx context.Context, cutoff time.Time) ([]shared.OrderSnapshot, error) {
	views, err := r.orders().FindHeldBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	snapshots := make([]shared.OrderSnapshot, 0, len(views))
	for _, view := range views {
		snap, err := orderSnapshotFromView(view)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snap)
	}
	return snapshots, nil
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.dbtx)
	}

	item, err := r.catalogStore.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ProductSnapshot{
		ID:         item.ID,
		CategoryID: item.CategoryID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Visible:    item.Visible,
	}, nil
}

func (r *commandReads) banners() *readstore.BannerReadStore {
	if r.bannerStore == nil {
		r.bannerStore = readstore.NewBannerReadStore(r.dbtx)
	}
	return r.bannerStore
}

func (r *commandReads) BannerByID(ctx context.Context, id uuid.UUID) (*shared.BannerSnapshot, error) {
	view, err := r.banners().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := bannerSnapshotFromView(view)
	return &snap, nil
}

func (r *commandReads) AllBanners(ctx context.Context) ([]shared.BannerSnapshot, error) {
	views, err := r.banners().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshots := make([]shared.BannerSnapshot, 0, len(views))
	for _, view := range views {
		snapshots = append(snapshots, bannerSnapshotFromView(view))
	}
	return snapshots, nil
}

func orderSnapshotFromView(view *queries.OrderView) (*shared.OrderSnapshot, error) {
	day, err := inventory.ParseDay(view.Day)
	if err != nil {
		return nil, errs.Wrap(err, "stored order day is malformed")
	}

	var reason *order.CancelReason
	if view.CancelReason != nil {
		cr := order.CancelReason(*view.CancelReason)
		reason = &cr
	}

	note := ""
	if view.Note != nil {
		note = *view.Note
	}

	return &shared.OrderSnapshot{
		ID:            view.ID,
		ProductID:     view.ProductID,
		Day:           day,
		PriceCents:    view.PriceCents,
		Status:        order.Status(view.Status),
		ReceiptURL:    view.ReceiptURL,
		CancelReason:  reason,
		CustomerName:  view.CustomerName,
		CustomerPhone: view.CustomerPhone,
		Note:          note,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
		VerifiedAt:    view.VerifiedAt,
		CancelledAt:   view.CancelledAt,
	}, nil
}

func bannerSnapshotFromView(view *queries.BannerView) shared.BannerSnapshot {
	return shared.BannerSnapshot{
		ID:        view.ID,
		Title:     view.Title,
		ImageURL:  view.ImageURL,
		LinkURL:   view.LinkURL,
		SortOrder: view.SortOrder,
		Active:    view.Active,
		StartAt:   view.StartAt,
		EndAt:     view.EndAt,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}
