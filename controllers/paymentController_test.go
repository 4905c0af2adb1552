package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Known vector: HMAC-SHA256("s3cr3t", "order_1|pay_1"), hex-encoded.
const knownSignature = "c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f"

func TestComputeSignature(t *testing.T) {
	assert.Equal(t, knownSignature, computeSignature("order_1", "pay_1", "s3cr3t"))
}

func TestVerifySignature(t *testing.T) {
	assert.True(t, verifySignature("order_1", "pay_1", knownSignature, "s3cr3t"))

	// Any single-character mutation must fail.
	for i := 0; i < len(knownSignature); i++ {
		mutated := []byte(knownSignature)
		if mutated[i] == 'f' {
			mutated[i] = '0'
		} else {
			mutated[i] = 'f'
		}
		assert.False(t, verifySignature("order_1", "pay_1", string(mutated), "s3cr3t"),
			"mutation at index %d should not verify", i)
	}

	assert.False(t, verifySignature("order_1", "pay_1", knownSignature, "other-secret"))
	assert.False(t, verifySignature("order_2", "pay_1", knownSignature, "s3cr3t"))
}

func TestVerifyPaymentHandler(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "s3cr3t")

	router := newTestRouter()
	router.POST("/api/payment/verify-payment", VerifyPayment)

	body := fmt.Sprintf(`{
		"razorpay_order_id": "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature": %q
	}`, knownSignature)

	w := performJSON(router, "POST", "/api/payment/verify-payment", []byte(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
}

func TestVerifyPaymentHandlerBadSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "s3cr3t")

	router := newTestRouter()
	router.POST("/api/payment/verify-payment", VerifyPayment)

	body := []byte(`{
		"razorpay_order_id": "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature": "deadbeef"
	}`)

	w := performJSON(router, "POST", "/api/payment/verify-payment", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["success"])
}

func TestVerifyPaymentHandlerMissingFields(t *testing.T) {
	router := newTestRouter()
	router.POST("/api/payment/verify-payment", VerifyPayment)

	w := performJSON(router, "POST", "/api/payment/verify-payment", []byte(`{"razorpay_order_id":"order_1"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
