// Package payment wraps the Midtrans Snap checkout used for wallet deposits and
// invoice payments.
package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Order id prefixes tell the webhook which record a payment settles.
const (
	DepositOrderPrefix = "DEP-"
	InvoiceOrderPrefix = "INV-"
)

type OrderKind string

const (
	OrderKindDeposit OrderKind = "deposit"
	OrderKindInvoice OrderKind = "invoice"
)

var ErrInvalidOrderId = errors.New("invalid order id")

func DepositOrderId(transactionId uuid.UUID) string {
	return DepositOrderPrefix + transactionId.String()
}

func InvoiceOrderId(invoiceId uuid.UUID) string {
	return InvoiceOrderPrefix + invoiceId.String()
}

// ParseOrderId splits an order id into its kind and record id.
func ParseOrderId(orderId string) (OrderKind, uuid.UUID, error) {
	var kind OrderKind
	var raw string
	switch {
	case strings.HasPrefix(orderId, DepositOrderPrefix):
		kind, raw = OrderKindDeposit, strings.TrimPrefix(orderId, DepositOrderPrefix)
	case strings.HasPrefix(orderId, InvoiceOrderPrefix):
		kind, raw = OrderKindInvoice, strings.TrimPrefix(orderId, InvoiceOrderPrefix)
	default:
		return "", uuid.Nil, ErrInvalidOrderId
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", uuid.Nil, ErrInvalidOrderId
	}
	return kind, id, nil
}

// Signature is SHA512(order_id + status_code + gross_amount + server_key), hex encoded.
func Signature(orderId, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderId + statusCode + grossAmount + serverKey))
	return fmt.Sprintf("%x", sum)
}

type CheckoutRequest struct {
	OrderId       string
	Amount        float64
	ItemName      string
	CustomerName  string
	CustomerEmail string
}

type Checkout struct {
	Token       string
	RedirectUrl string
}

type IGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	VerifySignature(orderId, statusCode, grossAmount, signature string) bool
}

type midtransGateway struct {
	client    snap.Client
	serverKey string
	finishURL string
}

// ChargeAmount is what Snap collects for amount. Snap takes whole rupees, so
// paise round up.
func ChargeAmount(amount float64) float64 {
	return math.Ceil(math.Round(amount*100) / 100)
}

func NewMidtransGateway(serverKey string, production bool, finishURL string) IGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &midtransGateway{serverKey: serverKey, finishURL: finishURL}
	g.client.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	if g.serverKey == "" {
		return nil, errors.New("payment gateway is not configured")
	}

	gross := int64(ChargeAmount(req.Amount))
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderId,
			GrossAmt: gross,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.OrderId,
				Price: gross,
				Qty:   1,
				Name:  truncate(req.ItemName, 50),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}
	if g.finishURL != "" {
		snapReq.Callbacks = &snap.Callbacks{Finish: g.finishURL}
	}

	resp, midErr := g.client.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return &Checkout{Token: resp.Token, RedirectUrl: resp.RedirectURL}, nil
}

func (g *midtransGateway) VerifySignature(orderId, statusCode, grossAmount, signature string) bool {
	if g.serverKey == "" {
		return false
	}
	expected := Signature(orderId, statusCode, grossAmount, g.serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
