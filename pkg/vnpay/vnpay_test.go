package vnpay

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestClient() *Client {
	c := NewClient("TESTTMN1", "SECRETSECRETSECRET", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html", "https://spa.example.com/payments/return")
	c.now = func() time.Time {
		return time.Date(2026, 9, 10, 14, 30, 0, 0, time.Local)
	}
	return c
}

func TestBuildPaymentURLFields(t *testing.T) {
	c := newTestClient()

	raw, err := c.BuildPaymentURL(PaymentURLParams{
		TxnRef:    "SPA-20260910-ABCDEF",
		Amount:    450000,
		OrderInfo: "Thanh toan don hang SPA-20260910-ABCDEF",
		Locale:    "en",
		IPAddr:    "203.0.113.9",
	})
	if err != nil {
		t.Fatalf("BuildPaymentURL: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := u.Query()

	wantFields := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    "TESTTMN1",
		"vnp_CurrCode":   "VND",
		"vnp_Amount":     "45000000", // VND times 100
		"vnp_TxnRef":     "SPA-20260910-ABCDEF",
		"vnp_Locale":     "en",
		"vnp_IpAddr":     "203.0.113.9",
		"vnp_CreateDate": "20260910143000",
		"vnp_ExpireDate": "20260910144500",
	}
	for field, want := range wantFields {
		if got := q.Get(field); got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}
	if q.Get("vnp_SecureHash") == "" {
		t.Error("missing vnp_SecureHash")
	}
	if q.Get("vnp_BankCode") != "" {
		t.Error("bank code should be absent when not pinned")
	}
}

func TestBuildPaymentURLDefaults(t *testing.T) {
	c := newTestClient()

	raw, err := c.BuildPaymentURL(PaymentURLParams{
		TxnRef: "SPA-20260910-ABCDEF",
		Amount: 100000,
	})
	if err != nil {
		t.Fatalf("BuildPaymentURL: %v", err)
	}
	u, _ := url.Parse(raw)
	if got := u.Query().Get("vnp_Locale"); got != "vn" {
		t.Errorf("default locale = %q, want vn", got)
	}
	if got := u.Query().Get("vnp_IpAddr"); got != "127.0.0.1" {
		t.Errorf("default ip = %q", got)
	}
}

func TestBuildPaymentURLRejectsBadParams(t *testing.T) {
	c := newTestClient()

	if _, err := c.BuildPaymentURL(PaymentURLParams{Amount: 100}); err == nil {
		t.Error("empty txn ref accepted")
	}
	if _, err := c.BuildPaymentURL(PaymentURLParams{TxnRef: "SPA-1", Amount: 0}); err == nil {
		t.Error("zero amount accepted")
	}
}

func TestVerifyCallbackRoundTrip(t *testing.T) {
	c := newTestClient()

	raw, err := c.BuildPaymentURL(PaymentURLParams{
		TxnRef:    "SPA-20260910-ABCDEF",
		Amount:    450000,
		OrderInfo: "Thanh toan don hang SPA-20260910-ABCDEF",
		BankCode:  "NCB",
		IPAddr:    "203.0.113.9",
	})
	if err != nil {
		t.Fatalf("BuildPaymentURL: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}

	// The gateway signs the callback the same way the redirect was signed,
	// so the redirect's own query must verify.
	if !c.VerifyCallback(u.Query()) {
		t.Fatal("signature round trip failed")
	}

	// Uppercased hash still verifies; some gateway responses do that.
	q := u.Query()
	q.Set("vnp_SecureHash", strings.ToUpper(q.Get("vnp_SecureHash")))
	if !c.VerifyCallback(q) {
		t.Error("uppercase hash rejected")
	}
}

func TestVerifyCallbackTamperedParam(t *testing.T) {
	c := newTestClient()

	raw, _ := c.BuildPaymentURL(PaymentURLParams{
		TxnRef: "SPA-20260910-ABCDEF",
		Amount: 450000,
	})
	u, _ := url.Parse(raw)

	q := u.Query()
	q.Set("vnp_Amount", "100")
	if c.VerifyCallback(q) {
		t.Error("tampered amount verified")
	}
}

func TestVerifyCallbackMissingHash(t *testing.T) {
	c := newTestClient()

	q := url.Values{}
	q.Set("vnp_TxnRef", "SPA-20260910-ABCDEF")
	if c.VerifyCallback(q) {
		t.Error("unsigned query verified")
	}
}

func TestVerifyCallbackWrongSecret(t *testing.T) {
	c := newTestClient()
	raw, _ := c.BuildPaymentURL(PaymentURLParams{
		TxnRef: "SPA-20260910-ABCDEF",
		Amount: 450000,
	})
	u, _ := url.Parse(raw)

	other := NewClient("TESTTMN1", "DIFFERENTSECRET", c.paymentURL, c.returnURL)
	if other.VerifyCallback(u.Query()) {
		t.Error("signature verified under a different secret")
	}
}
