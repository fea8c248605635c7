package inventory_test

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. El runner clona el estado
// y solo lo publica en commit, de modo que el rollback de la unidad atómica es
// observable en los tests de atomicidad.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products     map[string]*entity.Product
	productOrder []string
	transactions []*entity.Transaction
	receipts     []*entity.InventoryReceipt
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		products:     make(map[string]*entity.Product, len(s.products)),
		productOrder: append([]string(nil), s.productOrder...),
		transactions: append([]*entity.Transaction(nil), s.transactions...),
		receipts:     append([]*entity.InventoryReceipt(nil), s.receipts...),
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	return c
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	r.s.productOrder = append(r.s.productOrder, p.ID)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	stored, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	qty := stored.Quantity
	cp := *p
	cp.Quantity = qty // el CRUD nunca toca la cantidad
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *memProductRepo) ResetQuantities() (int, error) {
	for _, p := range r.s.products {
		p.Quantity = decimal.Zero
	}
	return len(r.s.products), nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.s.productOrder {
		cp := *r.s.products[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Search(nameNormalized string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.s.productOrder {
		p := r.s.products[id]
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(nameNormalized)) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

// ── TransactionRepository ─────────────────────────────────────────────────────

type memTransactionRepo struct{ s *memStore }

var _ repository.TransactionRepository = (*memTransactionRepo)(nil)

func (r *memTransactionRepo) Create(tx *entity.Transaction) error {
	cp := *tx
	r.s.transactions = append(r.s.transactions, &cp)
	return nil
}

func (r *memTransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, tx := range r.s.transactions {
		if tx.ID == id {
			cp := *tx
			if p, ok := r.s.products[cp.ProductID]; ok {
				cp.ProductName = p.Name
			}
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memTransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for i := len(r.s.transactions) - 1; i >= 0; i-- {
		cp := *r.s.transactions[i]
		if p, ok := r.s.products[cp.ProductID]; ok {
			cp.ProductName = p.Name
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTransactionRepo) ListCompletedChrono() ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.s.transactions {
		if tx.Status == entity.StatusCompleted {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── ReceiptRepository ─────────────────────────────────────────────────────────

type memReceiptRepo struct{ s *memStore }

var _ repository.ReceiptRepository = (*memReceiptRepo)(nil)

func (r *memReceiptRepo) Create(receipt *entity.InventoryReceipt) error {
	cp := *receipt
	r.s.receipts = append(r.s.receipts, &cp)
	return nil
}

func (r *memReceiptRepo) List(limit, offset int) ([]*entity.InventoryReceipt, error) {
	var out []*entity.InventoryReceipt
	for i := len(r.s.receipts) - 1; i >= 0; i-- {
		cp := *r.s.receipts[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memReceiptRepo) ListByBatch(batch string) ([]*entity.InventoryReceipt, error) {
	var out []*entity.InventoryReceipt
	for _, rec := range r.s.receipts {
		if rec.Batch == batch {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memReceiptRepo) ListChrono() ([]*entity.InventoryReceipt, error) {
	var out []*entity.InventoryReceipt
	for _, rec := range r.s.receipts {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner ejecuta fn sobre un clon del estado y solo lo publica si fn
// retorna nil (commit); cualquier error descarta el clon (rollback).
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	working := r.s.clone()
	if err := fn(&memProductRepo{working}, &memTransactionRepo{working}, &memReceiptRepo{working}); err != nil {
		return err
	}
	*r.s = *working
	return nil
}
