// file: internals/features/housing/invoices/service/payment_service.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"ktx_backend/internals/configs"
	"ktx_backend/internals/features/housing/invoices/model"
)

var (
	SnapClient snap.Client
	serverKey  string
)

var (
	ErrInvoiceNotPayable = errors.New("invoice is not payable")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrBadSignature      = errors.New("invalid webhook signature")
)

// InitMidtrans must run at bootstrap. MIDTRANS_ENV=production switches off
// the sandbox.
func InitMidtrans(key string) {
	serverKey = key
	if strings.EqualFold(configs.GetEnv("MIDTRANS_ENV", "sandbox"), "production") {
		SnapClient.New(key, midtrans.Production)
		return
	}
	SnapClient.New(key, midtrans.Sandbox)
}

// CustomerInput identifies the payer to the gateway.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// GenerateSnapToken creates a midtrans snap transaction for an invoice.
// The invoice code doubles as the gateway order id, so the webhook can find
// the invoice back without extra bookkeeping.
func GenerateSnapToken(inv *model.Invoice, cust CustomerInput) (string, string, error) {
	if inv.InvoiceAmount <= 0 {
		return "", "", errors.New("invalid invoice amount")
	}
	if inv.InvoiceStatus != model.InvoiceStatusUnpaid && inv.InvoiceStatus != model.InvoiceStatusOverdue {
		return "", "", ErrInvoiceNotPayable
	}

	desc := inv.InvoiceDescription
	if desc == "" {
		desc = string(inv.InvoiceType)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceCode,
			GrossAmt: inv.InvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       inv.InvoiceCode,
				Price:    inv.InvoiceAmount,
				Qty:      1,
				Name:     truncate(desc, 50),
				Category: string(inv.InvoiceType),
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// VerifyWebhookSignature checks SHA512(order_id + status_code + gross_amount
// + server key) against the signature midtrans sent.
func VerifyWebhookSignature(orderID, statusCode, grossAmount, signature string) bool {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:]) == strings.ToLower(signature)
}

// SettleInvoice flips the invoice for a settled gateway order to PAID.
// Already-paid invoices are left alone so webhook retries stay idempotent.
func SettleInvoice(db *gorm.DB, orderID string, paidAt time.Time) (*model.Invoice, error) {
	var inv model.Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, "invoice_code = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		if inv.InvoiceStatus == model.InvoiceStatusPaid {
			return nil
		}
		if !model.AllowedStatusTransition(inv.InvoiceStatus, model.InvoiceStatusPaid) {
			return ErrInvoiceNotPayable
		}
		inv.InvoiceStatus = model.InvoiceStatusPaid
		inv.InvoicePaidAt = &paidAt
		return tx.Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
