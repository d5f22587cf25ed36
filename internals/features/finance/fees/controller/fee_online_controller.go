package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	studentModel "schoolku_backend/internals/features/academics/students/model"
	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/features/finance/fees/service"
	helper "schoolku_backend/internals/helpers"
)

/* ==============================
   PEMBAYARAN ONLINE (Midtrans Snap)
============================== */

// POST /api/a/fees/collect-online — buat transaksi Snap untuk sebuah tagihan.
// Pembayaran baru dicatat ke ledger saat webhook settlement masuk.
func (h *FeeHandler) CollectOnline(c *fiber.Ctx) error {
	instituteID, err := helper.GetInstituteIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CollectOnlineDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if req.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrInvalidAmount.Error())
	}

	var sf model.StudentFeeModel
	if err := h.DB.
		Where("student_fee_id = ? AND student_fee_institute_id = ?", req.StudentFeeID, instituteID).
		First(&sf).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	var student studentModel.StudentModel
	if err := h.DB.
		Where("student_id = ?", sf.StudentFeeStudentID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	orderID := service.BuildFeeOrderID(sf.StudentFeeID)
	token, redirectURL, err := service.GenerateFeeSnapToken(orderID, req.Amount, "School Fee", service.SnapCustomer{
		Name:  student.StudentName,
		Phone: student.StudentMobile,
	})
	if err != nil {
		log.Printf("[ERROR] snap transaction gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	return helper.JsonCreated(c, "Transaksi pembayaran dibuat", fiber.Map{
		"order_id":     orderID,
		"snap_token":   token,
		"redirect_url": redirectURL,
		"amount":       req.Amount,
	})
}

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	SignatureKey      string `json:"signature_key"`
}

// signature = sha512(order_id + status_code + gross_amount + server_key)
func (n *midtransNotification) validSignature(serverKey string) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == strings.ToLower(n.SignatureKey)
}

// feeIDFromOrderID membaca student_fee_id dari OrderID "fee-<uuid>-<nonce>".
func feeIDFromOrderID(orderID string) (uuid.UUID, bool) {
	if !strings.HasPrefix(orderID, "fee-") {
		return uuid.Nil, false
	}
	rest := strings.TrimPrefix(orderID, "fee-")
	if idx := strings.LastIndex(rest, "-"); idx > 0 {
		// nonce menempel di belakang; uuid sendiri mengandung '-' jadi
		// potong pada pemisah terakhir
		if id, err := uuid.Parse(rest[:idx]); err == nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

// POST /api/webhooks/midtrans — endpoint notifikasi Midtrans (tanpa auth JWT;
// keaslian diverifikasi lewat signature_key). Settlement meneruskan ke
// urutan collect yang sama dengan pembayaran tunai.
func (h *FeeHandler) MidtransWebhook(c *fiber.Ctx) error {
	var n midtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY", "")
	if serverKey == "" || !n.validSignature(serverKey) {
		log.Printf("[ERROR] webhook midtrans: signature tidak cocok order_id=%s", n.OrderID)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	settled := n.TransactionStatus == "settlement" ||
		(n.TransactionStatus == "capture" && n.FraudStatus == "accept")
	if !settled {
		// pending/expire/cancel: diakui saja, tidak ada mutasi ledger
		return helper.JsonOK(c, "OK", fiber.Map{"order_id": n.OrderID, "status": n.TransactionStatus})
	}

	feeID, ok := feeIDFromOrderID(n.OrderID)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak dikenal")
	}

	gross, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil || gross <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "gross_amount tidak valid")
	}
	amount := int(gross)

	// idempoten: order yang sudah tercatat tidak boleh dobel masuk ledger
	var existing int64
	if err := h.DB.Model(&model.FeePaymentModel{}).
		Where("fee_payment_external_id = ?", n.OrderID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa pembayaran")
	}
	if existing > 0 {
		return helper.JsonOK(c, "Sudah tercatat", fiber.Map{"order_id": n.OrderID})
	}

	var sf model.StudentFeeModel
	if err := h.DB.
		Where("student_fee_id = ?", feeID).
		First(&sf).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	orderID := n.OrderID
	result, err := h.collectPayment(sf.StudentFeeInstituteID, sf.StudentFeeID, amount, "online", time.Now(), &orderID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] webhook midtrans: settle gagal order_id=%s err=%v", n.OrderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	log.Printf("[INFO] webhook midtrans: settlement tercatat order_id=%s paid=%d", n.OrderID, result.Paid)
	return helper.JsonOK(c, "Pembayaran online tercatat", result)
}
