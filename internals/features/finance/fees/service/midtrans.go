package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/google/uuid"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// BuildFeeOrderID membentuk OrderID unik per percobaan bayar online.
// Format: fee-<student_fee_id>-<nonce pendek>.
func BuildFeeOrderID(studentFeeID uuid.UUID) string {
	return fmt.Sprintf("fee-%s-%s", studentFeeID, uuid.NewString()[:8])
}

type SnapCustomer struct {
	Name  string
	Email string
	Phone string
}

// GenerateFeeSnapToken membuat transaksi Snap untuk satu tagihan siswa.
// Mengembalikan token + redirect URL untuk frontend.
func GenerateFeeSnapToken(orderID string, amount int, feeName string, cust SnapCustomer) (string, string, error) {
	if amount <= 0 {
		return "", "", errors.New("jumlah pembayaran tidak valid")
	}
	if orderID == "" {
		return "", "", errors.New("order_id wajib diisi")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       orderID,
				Price:    int64(amount),
				Qty:      1,
				Name:     truncate(feeName, 50),
				Category: "SchoolFee",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
