//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"organic-storefront/internal/domain/banner"
	"organic-storefront/internal/domain/catalog"
	"organic-storefront/internal/domain/inventory"
	"organic-storefront/internal/domain/order"
	"organic-storefront/internal/domain/payment"
	"organic-storefront/internal/infra"
	"organic-storefront/internal/infra/db"
	"organic-storefront/internal/infra/events"
	"organic-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type entryKey struct {
	day       string
	productID uuid.UUID
}

// fakeStore is an in-memory stand-in for the database. Transactions are
// serialized by a single mutex and rolled back by restoring a snapshot, which
// preserves the two properties the commands rely on: atomicity and the
// conditional stock decrement. Stock math is not reimplemented here: the
// inventory repo rebuilds the day's `inventory.Ledger` and lets the domain
// move the counters.
type fakeStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]shared.ProductSnapshot
	entries  map[entryKey]inventory.Entry
	orders   map[uuid.UUID]shared.OrderSnapshot
	banners  map[uuid.UUID]shared.BannerSnapshot
	methods  map[uuid.UUID]*payment.Method
	audit    []shared.AuditEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[uuid.UUID]shared.ProductSnapshot),
		entries:  make(map[entryKey]inventory.Entry),
		orders:   make(map[uuid.UUID]shared.OrderSnapshot),
		banners:  make(map[uuid.UUID]shared.BannerSnapshot),
		methods:  make(map[uuid.UUID]*payment.Method),
	}
}

func (s *fakeStore) addProduct(visible bool) uuid.UUID {
	id := uuid.New()
	s.products[id] = shared.ProductSnapshot{ID: id, Name: "heirloom tomatoes", PriceCents: 4500, Visible: visible}
	return id
}

func (s *fakeStore) stock(day inventory.Day, productID uuid.UUID, available int, priceCents int64) {
	e, err := inventory.NewEntry(productID, available, priceCents)
	if err != nil {
		panic(err)
	}
	s.entries[entryKey{day.String(), productID}] = e
}

func (s *fakeStore) entry(day inventory.Day, productID uuid.UUID) (inventory.Entry, bool) {
	e, ok := s.entries[entryKey{day.String(), productID}]
	return e, ok
}

func (s *fakeStore) dayLedger(day inventory.Day) (*inventory.Ledger, bool) {
	var list []inventory.Entry
	for k, e := range s.entries {
		if k.day == day.String() {
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		return nil, false
	}
	return inventory.NewLedger(day, list), true
}

func (s *fakeStore) snapshot() (map[entryKey]inventory.Entry, map[uuid.UUID]shared.OrderSnapshot, map[uuid.UUID]shared.BannerSnapshot, int) {
	entries := make(map[entryKey]inventory.Entry, len(s.entries))
	for k, v := range s.entries {
		entries[k] = v
	}
	orders := make(map[uuid.UUID]shared.OrderSnapshot, len(s.orders))
	for k, v := range s.orders {
		orders[k] = v
	}
	banners := make(map[uuid.UUID]shared.BannerSnapshot, len(s.banners))
	for k, v := range s.banners {
		banners[k] = v
	}
	return entries, orders, banners, len(s.audit)
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	entries, orders, banners, auditLen := u.store.snapshot()
	err := fn(ctx, &fakeTx{store: u.store})
	if err != nil {
		u.store.entries = entries
		u.store.orders = orders
		u.store.banners = banners
		u.store.audit = u.store.audit[:auditLen]
	}
	return err
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store, locking: true}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) DB() db.DBTX                           { return nil }
func (t *fakeTx) Orders() shared.OrderRepository        { return &fakeOrderRepo{t.store} }
func (t *fakeTx) Inventory() shared.InventoryRepository { return &fakeInventoryRepo{t.store} }
func (t *fakeTx) Banners() shared.BannerRepository      { return &fakeBannerRepo{t.store} }
func (t *fakeTx) Products() shared.ProductRepository    { return &fakeProductRepo{t.store} }
func (t *fakeTx) PaymentMethods() shared.PaymentMethodRepository {
	return &fakePaymentMethodRepo{t.store}
}
func (t *fakeTx) Audit() shared.AuditRepository { return &fakeAuditRepo{t.store} }
func (t *fakeTx) Reads() shared.CommandReads    { return &fakeReads{store: t.store} }

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) error {
	r.store.orders[o.ID()] = orderToSnapshot(o)
	return nil
}

func (r *fakeOrderRepo) UpdateState(_ context.Context, _ db.DBTX, o *order.Order, loaded order.Status) error {
	current, ok := r.store.orders[o.ID()]
	if !ok || current.Status != loaded {
		return infra.WrapRepoErr("order state changed concurrently", nil, infra.KindConflict)
	}
	r.store.orders[o.ID()] = orderToSnapshot(o)
	return nil
}

func orderToSnapshot(o *order.Order) shared.OrderSnapshot {
	return shared.OrderSnapshot{
		ID:            o.ID(),
		ProductID:     o.ProductID(),
		Day:           o.Day(),
		PriceCents:    o.PriceCents(),
		Status:        o.Status(),
		ReceiptURL:    o.ReceiptURL(),
		CancelReason:  o.CancelReason(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		Note:          o.Note(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		VerifiedAt:    o.VerifiedAt(),
		CancelledAt:   o.CancelledAt(),
	}
}

type fakeInventoryRepo struct {
	store *fakeStore
}

func (r *fakeInventoryRepo) ReserveEntry(_ context.Context, _ db.DBTX, day inventory.Day, productID uuid.UUID) (int64, error) {
	l, ok := r.store.dayLedger(day)
	if !ok {
		return 0, infra.WrapRepoErr("no inventory ledger for day", nil, infra.KindNotFound)
	}
	reserved, err := l.Reserve(productID)
	if err != nil {
		return 0, infra.WrapRepoErr("product sold out for day", err, infra.KindConflict)
	}
	r.store.entries[entryKey{day.String(), productID}] = reserved
	return reserved.PriceCents, nil
}

func (r *fakeInventoryRepo) ReleaseEntry(_ context.Context, _ db.DBTX, day inventory.Day, productID uuid.UUID, priceCents int64) error {
	l, ok := r.store.dayLedger(day)
	if !ok {
		l = inventory.NewLedger(day, nil)
	}
	released := l.Release(productID)
	if released.PriceCents == 0 {
		released.PriceCents = priceCents
	}
	r.store.entries[entryKey{day.String(), productID}] = released
	return nil
}

func (r *fakeInventoryRepo) UpsertEntry(_ context.Context, _ db.DBTX, day inventory.Day, productID uuid.UUID, available int, priceCents int64) error {
	key := entryKey{day.String(), productID}
	e, err := inventory.NewEntry(productID, available, priceCents)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert inventory entry", err)
	}
	e.Sold = r.store.entries[key].Sold
	r.store.entries[key] = e
	return nil
}

func (r *fakeInventoryRepo) DeleteEntriesExcept(_ context.Context, _ db.DBTX, day inventory.Day, keep []uuid.UUID) error {
	kept := make(map[uuid.UUID]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}
	for key := range r.store.entries {
		if key.day != day.String() {
			continue
		}
		if _, ok := kept[key.productID]; !ok {
			delete(r.store.entries, key)
		}
	}
	return nil
}

type fakeBannerRepo struct {
	store *fakeStore
}

func (r *fakeBannerRepo) Create(_ context.Context, _ db.DBTX, b *banner.Banner) error {
	r.store.banners[b.ID()] = bannerToSnapshot(b)
	return nil
}

func (r *fakeBannerRepo) Update(_ context.Context, _ db.DBTX, b *banner.Banner) error {
	if _, ok := r.store.banners[b.ID()]; !ok {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	r.store.banners[b.ID()] = bannerToSnapshot(b)
	return nil
}

func (r *fakeBannerRepo) SetActive(_ context.Context, _ db.DBTX, id uuid.UUID, active bool, updatedAt time.Time) error {
	snap, ok := r.store.banners[id]
	if !ok {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	snap.Active = active
	snap.UpdatedAt = updatedAt
	r.store.banners[id] = snap
	return nil
}

func (r *fakeBannerRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.banners[id]; !ok {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	delete(r.store.banners, id)
	return nil
}

func bannerToSnapshot(b *banner.Banner) shared.BannerSnapshot {
	return shared.BannerSnapshot{
		ID:        b.ID(),
		Title:     b.Title(),
		ImageURL:  b.ImageURL(),
		LinkURL:   b.LinkURL(),
		SortOrder: b.SortOrder(),
		Active:    b.Active(),
		StartAt:   b.StartAt(),
		EndAt:     b.EndAt(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(_ context.Context, _ db.DBTX, p *catalog.Product) error {
	r.store.products[p.ID()] = productToSnapshot(p)
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, _ db.DBTX, p *catalog.Product) error {
	if _, ok := r.store.products[p.ID()]; !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	r.store.products[p.ID()] = productToSnapshot(p)
	return nil
}

func productToSnapshot(p *catalog.Product) shared.ProductSnapshot {
	return shared.ProductSnapshot{
		ID:         p.ID(),
		CategoryID: p.CategoryID(),
		Name:       p.Name(),
		PriceCents: p.PriceCents(),
		Visible:    p.Visible(),
	}
}

type fakePaymentMethodRepo struct {
	store *fakeStore
}

func (r *fakePaymentMethodRepo) Create(_ context.Context, _ db.DBTX, m *payment.Method) error {
	r.store.methods[m.ID()] = m
	return nil
}

func (r *fakePaymentMethodRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.store.methods[id]; !ok {
		return infra.WrapRepoErr("payment method not found", nil, infra.KindNotFound)
	}
	delete(r.store.methods, id)
	return nil
}

type fakeAuditRepo struct {
	store *fakeStore
}

func (r *fakeAuditRepo) Append(_ context.Context, _ db.DBTX, entry shared.AuditEntry) error {
	r.store.audit = append(r.store.audit, entry)
	return nil
}

type fakeReads struct {
	store   *fakeStore
	locking bool
}

func (r *fakeReads) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	defer r.lock()()
	snap, ok := r.store.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) HeldOrdersCreatedBefore(_ context.Context, cutoff time.Time) ([]shared.OrderSnapshot, error) {
	defer r.lock()()
	var stale []shared.OrderSnapshot
	for _, snap := range r.store.orders {
		if snap.Status.HoldsStock() && snap.CreatedAt.Before(cutoff) {
			stale = append(stale, snap)
		}
	}
	return stale, nil
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	defer r.lock()()
	snap, ok := r.store.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) BannerByID(_ context.Context, id uuid.UUID) (*shared.BannerSnapshot, error) {
	defer r.lock()()
	snap, ok := r.store.banners[id]
	if !ok {
		return nil, infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) AllBanners(_ context.Context) ([]shared.BannerSnapshot, error) {
	defer r.lock()()
	snaps := make([]shared.BannerSnapshot, 0, len(r.store.banners))
	for _, snap := range r.store.banners {
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.OrderEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event events.OrderEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) byType(eventType string) []events.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.OrderEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
