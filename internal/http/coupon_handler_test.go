package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func seedCart(t *testing.T, env *cartEnv, userID string, productID int64, qty int) {
	t.Helper()
	if _, err := env.service.Add(context.Background(), userID, productID, qty); err != nil {
		t.Fatalf("Failed to seed cart: %v", err)
	}
}

func TestApplyCoupon_Success(t *testing.T) {
	env := newCartEnv(testProducts())
	seedCart(t, env, "user123", 3, 2) // 2400 subtotal

	body, _ := json.Marshal(map[string]string{"couponCode": "flat10"})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("POST", "/api/cart/apply-coupon", bytes.NewReader(body)), "user123")

	env.couponHandler.Apply(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CouponResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Success || response.Message != "Coupon applied successfully" {
		t.Errorf("Unexpected response envelope: %+v", response)
	}
	if response.CouponCode != "FLAT10" {
		t.Errorf("Expected coupon code FLAT10, got %s", response.CouponCode)
	}
	if response.Discount != 240 {
		t.Errorf("Expected discount 240, got %f", response.Discount)
	}
	if response.Total != 2160 {
		t.Errorf("Expected total 2160, got %f", response.Total)
	}
}

func TestApplyCoupon_Unknown(t *testing.T) {
	env := newCartEnv(testProducts())
	seedCart(t, env, "user123", 3, 2)

	body, _ := json.Marshal(map[string]string{"couponCode": "BOGUS"})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("POST", "/api/cart/apply-coupon", bytes.NewReader(body)), "user123")

	env.couponHandler.Apply(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Message != "invalid coupon code" {
		t.Errorf("Expected message 'invalid coupon code', got '%s'", response.Message)
	}
}

func TestApplyCoupon_BelowMinimumOrder(t *testing.T) {
	env := newCartEnv(testProducts())
	seedCart(t, env, "user123", 3, 2) // 2400, NEWUSER needs 5000

	body, _ := json.Marshal(map[string]string{"couponCode": "NEWUSER"})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("POST", "/api/cart/apply-coupon", bytes.NewReader(body)), "user123")

	env.couponHandler.Apply(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Message != "minimum order value of ₹5000 required for coupon NEWUSER" {
		t.Errorf("Unexpected message: '%s'", response.Message)
	}

	// Failed apply leaves no association behind
	if _, ok := env.store.Get("user123"); ok {
		t.Error("Expected no applied coupon after rejection")
	}
}

func TestApplyCoupon_MissingCode(t *testing.T) {
	env := newCartEnv(testProducts())

	body, _ := json.Marshal(map[string]string{})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("POST", "/api/cart/apply-coupon", bytes.NewReader(body)), "user123")

	env.couponHandler.Apply(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestRemoveCoupon(t *testing.T) {
	env := newCartEnv(testProducts())
	seedCart(t, env, "user123", 3, 2)
	env.store.Set("user123", "FLAT10")

	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("DELETE", "/api/cart/coupon/remove", nil), "user123")

	env.couponHandler.Remove(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CouponResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Message != "Coupon removed" {
		t.Errorf("Unexpected message: '%s'", response.Message)
	}
	if response.Discount != 0 || response.Total != 2400 {
		t.Errorf("Expected undiscounted totals, got %+v", response)
	}
	if _, ok := env.store.Get("user123"); ok {
		t.Error("Expected coupon association cleared")
	}
}

func TestRemoveCoupon_CartReadFailure(t *testing.T) {
	env := newCartEnv(testProducts())
	env.store.Set("user123", "FLAT10")
	env.repo.err = context.DeadlineExceeded

	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("DELETE", "/api/cart/coupon/remove", nil), "user123")

	env.couponHandler.Remove(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	// The association is cleared even though the cart could not be read.
	if _, ok := env.store.Get("user123"); ok {
		t.Error("Expected coupon association cleared despite cart read failure")
	}

	var response CouponResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Success || response.Message != "Coupon removed" {
		t.Errorf("Unexpected response envelope: %+v", response)
	}
	if response.Discount != 0 {
		t.Errorf("Expected zero discount, got %f", response.Discount)
	}
}

func TestRemoveCoupon_NoneApplied(t *testing.T) {
	env := newCartEnv(testProducts())

	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("DELETE", "/api/cart/coupon/remove", nil), "user123")

	env.couponHandler.Remove(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
}
