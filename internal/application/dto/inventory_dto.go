package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/v1/transactions
// (operación individual Receive o Distribute).
type CreateTransactionRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Operation string          `json:"operation"`
	Purpose   string          `json:"purpose"`
	Batch     string          `json:"batch,omitempty"`
}

// TransactionResponse salida de una entrada del libro de movimientos.
type TransactionResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Operation   string          `json:"operation"`
	Purpose     string          `json:"purpose"`
	Batch       string          `json:"batch,omitempty"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse listado paginado de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ReceiveLineRequest una línea (producto, cantidad, unidad) de una recepción.
type ReceiveLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
}

// ReceiveRequest body para POST /api/v1/inventory/receive.
type ReceiveRequest struct {
	Products []ReceiveLineRequest `json:"products"`
	Purpose  string               `json:"purpose"`
	Batch    string               `json:"batch,omitempty"`
}

// ReceiptResponse una línea de recepción persistida.
type ReceiptResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Purpose     string          `json:"purpose"`
	Batch       string          `json:"batch,omitempty"`
	ReceivedBy  string          `json:"received_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReceiveProductSummary resumen por producto de una recepción en lote.
type ReceiveProductSummary struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Added       decimal.Decimal `json:"quantity_added"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

// ReceiveResponse salida de una recepción en lote.
type ReceiveResponse struct {
	Transaction TransactionResponse     `json:"transaction"`
	Inventory   []ReceiptResponse       `json:"inventory"`
	Products    []ReceiveProductSummary `json:"products"`
}

// DistributeLineRequest una línea de una distribución en lote.
type DistributeLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

// DistributeRequest body para POST /api/v1/distributions.
type DistributeRequest struct {
	Lines   []DistributeLineRequest `json:"distributions"`
	Purpose string                  `json:"purpose"`
	Batch   string                  `json:"batch"`
}

// RestoreResponse salida de la reparación del inventario.
type RestoreResponse struct {
	ProductsReconciled int `json:"products_reconciled"`
}
