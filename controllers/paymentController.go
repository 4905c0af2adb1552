package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/voltkart/voltkart-api/utils"
	"go.uber.org/zap"
)

const razorpayOrdersURL = "https://api.razorpay.com/v1/orders"

// computeSignature recomputes the provider signature over the order and
// payment identifiers: hex(HMAC-SHA256(secret, order_id + "|" + payment_id)).
func computeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func verifySignature(orderID, paymentID, signature, secret string) bool {
	expected := computeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// PaymentTest is a liveness probe for the payment route group.
func PaymentTest(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Payment route working fine",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// CreatePaymentOrder registers an order with Razorpay and relays the provider
// order object to the caller. Amounts arrive in rupees and are converted to
// paise for the provider.
func CreatePaymentOrder(ctx *gin.Context) {
	var body struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Amount is required")
		return
	}

	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		utils.Logger.Error("razorpay credentials are not set")
		sendErrorResponse(ctx, http.StatusInternalServerError, "Missing payment configuration")
		return
	}

	providerOrder := map[string]any{
		"amount":   int64(math.Round(body.Amount * 100)),
		"currency": "INR",
		"receipt":  "receipt_" + uuid.NewString(),
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).
		R().
		SetBasicAuth(keyID, keySecret).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(providerOrder).
		Post(razorpayOrdersURL)

	if err != nil || resp.StatusCode() != http.StatusOK {
		utils.Logger.Error("razorpay order request failed",
			zap.Error(err),
			zap.Int("status", resp.StatusCode()))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create payment order")
		return
	}

	var order map[string]any
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Invalid response from payment gateway")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// VerifyPayment checks a provider-supplied signature against a locally
// recomputed HMAC. It reports the result only; order status is untouched.
func VerifyPayment(ctx *gin.Context) {
	var body struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if !verifySignature(body.RazorpayOrderID, body.RazorpayPaymentID, body.RazorpaySignature, secret) {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid signature",
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
	})
}
