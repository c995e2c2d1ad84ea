package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/dto/request"
	"spa-booking/pkg/utils"
	"spa-booking/pkg/vnpay"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testHashSecret = "SECRETSECRETSECRET"

func newTestPayment(t *testing.T) (*paymentService, *testRepo) {
	t.Helper()
	repo, fakes := newTestRepo()
	gateway := vnpay.NewClient("TESTTMN1", testHashSecret, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html", "https://spa.example.com/payments/return")
	svc := NewPaymentService(repo, gateway, nil, &utils.Config{}, zap.NewNop()).(*paymentService)
	svc.now = func() time.Time {
		return time.Date(2026, 9, 10, 15, 0, 0, 0, time.Local)
	}
	return svc, fakes
}

// signedCallback builds a gateway callback query signed the way VNPay signs
// them: keys sorted ascending, values query-escaped, HMAC-SHA512.
func signedCallback(params map[string]string) url.Values {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}

	mac := hmac.New(sha512.New, []byte(testHashSecret))
	mac.Write([]byte(b.String()))

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("vnp_SecureHash", hex.EncodeToString(mac.Sum(nil)))
	return q
}

func seedPendingPayment(fakes *testRepo) (*entity.Booking, *entity.Payment) {
	booking := &entity.Booking{
		Base:            entity.Base{ID: uuid.New()},
		ReferenceNumber: "SPA-20260910-ABCDEF",
		BranchID:        uuid.New(),
		AppointmentDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.Local),
		AppointmentTime: "10:00",
		Status:          entity.BookingStatusPending,
		TotalPrice:      450000,
		Language:        "en",
	}
	fakes.bookings.bookings[booking.ID] = booking

	payment := &entity.Payment{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		BookingID:    booking.ID,
		Amount:       450000,
		Currency:     "VND",
		PaymentType:  entity.PaymentTypeATM,
		Status:       entity.PaymentStatusPending,
	}
	fakes.payments.payments[payment.ID] = payment
	return booking, payment
}

func TestCreatePaymentURL(t *testing.T) {
	svc, fakes := newTestPayment(t)
	booking, _ := seedPendingPayment(fakes)

	got, err := svc.CreatePaymentURL(context.Background(), &request.CreatePaymentURLRequest{
		BookingID: booking.ID.String(),
		Locale:    "vn",
	}, "203.0.113.9")
	if err != nil {
		t.Fatalf("CreatePaymentURL: %v", err)
	}

	u, err := url.Parse(got.PaymentURL)
	if err != nil {
		t.Fatalf("parse payment url: %v", err)
	}
	q := u.Query()
	if q.Get("vnp_TxnRef") != booking.ReferenceNumber {
		t.Errorf("vnp_TxnRef = %q", q.Get("vnp_TxnRef"))
	}
	if q.Get("vnp_Amount") != "45000000" {
		t.Errorf("vnp_Amount = %q, want 45000000", q.Get("vnp_Amount"))
	}
}

func TestCreatePaymentURLWithoutPendingPayment(t *testing.T) {
	svc, fakes := newTestPayment(t)
	booking, payment := seedPendingPayment(fakes)
	payment.Status = entity.PaymentStatusCompleted

	_, err := svc.CreatePaymentURL(context.Background(), &request.CreatePaymentURLRequest{
		BookingID: booking.ID.String(),
	}, "203.0.113.9")
	if err == nil || !strings.Contains(err.Error(), "no pending payment") {
		t.Errorf("error = %v, want no pending payment", err)
	}
}

func TestHandleIPN(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*testRepo) url.Values
		wantCode    string
		wantPayment entity.PaymentStatus
		wantBooking entity.BookingStatus
	}{
		{
			name: "invalid signature",
			setup: func(fakes *testRepo) url.Values {
				seedPendingPayment(fakes)
				q := signedCallback(map[string]string{"vnp_TxnRef": "SPA-20260910-ABCDEF"})
				q.Set("vnp_Amount", "1") // tamper after signing
				return q
			},
			wantCode:    "97",
			wantPayment: entity.PaymentStatusPending,
			wantBooking: entity.BookingStatusPending,
		},
		{
			name: "unknown order",
			setup: func(fakes *testRepo) url.Values {
				seedPendingPayment(fakes)
				return signedCallback(map[string]string{
					"vnp_TxnRef":       "SPA-20260910-NOSUCH",
					"vnp_ResponseCode": "00",
				})
			},
			wantCode:    "01",
			wantPayment: entity.PaymentStatusPending,
			wantBooking: entity.BookingStatusPending,
		},
		{
			name: "already confirmed",
			setup: func(fakes *testRepo) url.Values {
				_, payment := seedPendingPayment(fakes)
				payment.Status = entity.PaymentStatusCompleted
				return signedCallback(map[string]string{
					"vnp_TxnRef":       "SPA-20260910-ABCDEF",
					"vnp_ResponseCode": "00",
				})
			},
			wantCode:    "02",
			wantPayment: entity.PaymentStatusCompleted,
			wantBooking: entity.BookingStatusPending,
		},
		{
			name: "successful transaction confirms the booking",
			setup: func(fakes *testRepo) url.Values {
				seedPendingPayment(fakes)
				return signedCallback(map[string]string{
					"vnp_TxnRef":        "SPA-20260910-ABCDEF",
					"vnp_ResponseCode":  "00",
					"vnp_TransactionNo": "14226112",
				})
			},
			wantCode:    "00",
			wantPayment: entity.PaymentStatusCompleted,
			wantBooking: entity.BookingStatusConfirmed,
		},
		{
			name: "declined transaction is acknowledged but fails the payment",
			setup: func(fakes *testRepo) url.Values {
				seedPendingPayment(fakes)
				return signedCallback(map[string]string{
					"vnp_TxnRef":       "SPA-20260910-ABCDEF",
					"vnp_ResponseCode": "24", // customer cancelled
				})
			},
			wantCode:    "00",
			wantPayment: entity.PaymentStatusFailed,
			wantBooking: entity.BookingStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fakes := newTestPayment(t)
			query := tt.setup(fakes)

			got := svc.HandleIPN(context.Background(), query)
			if got.RspCode != tt.wantCode {
				t.Errorf("RspCode = %s, want %s", got.RspCode, tt.wantCode)
			}

			for _, p := range fakes.payments.payments {
				if p.Status != tt.wantPayment {
					t.Errorf("payment status = %s, want %s", p.Status, tt.wantPayment)
				}
			}
			for _, b := range fakes.bookings.bookings {
				if b.Status != tt.wantBooking {
					t.Errorf("booking status = %s, want %s", b.Status, tt.wantBooking)
				}
			}
		})
	}
}

func TestHandleIPNRecordsTransactionID(t *testing.T) {
	svc, fakes := newTestPayment(t)
	_, payment := seedPendingPayment(fakes)

	svc.HandleIPN(context.Background(), signedCallback(map[string]string{
		"vnp_TxnRef":        "SPA-20260910-ABCDEF",
		"vnp_ResponseCode":  "00",
		"vnp_TransactionNo": "14226112",
	}))

	if payment.TransactionID == nil || *payment.TransactionID != "14226112" {
		t.Errorf("transaction id not stored: %v", payment.TransactionID)
	}
}

func TestHandleReturnInvalidSignatureIsNotAnError(t *testing.T) {
	svc, fakes := newTestPayment(t)
	seedPendingPayment(fakes)

	q := url.Values{}
	q.Set("vnp_TxnRef", "SPA-20260910-ABCDEF")
	q.Set("vnp_SecureHash", "deadbeef")

	got, err := svc.HandleReturn(context.Background(), q)
	if err != nil {
		t.Fatalf("HandleReturn: %v", err)
	}
	if got.Success || got.ResponseCode != "97" {
		t.Errorf("got %+v, want failed 97", got)
	}
}

func TestHandleReturnSettlesAndReports(t *testing.T) {
	svc, fakes := newTestPayment(t)
	booking, _ := seedPendingPayment(fakes)

	got, err := svc.HandleReturn(context.Background(), signedCallback(map[string]string{
		"vnp_TxnRef":        "SPA-20260910-ABCDEF",
		"vnp_ResponseCode":  "00",
		"vnp_TransactionNo": "14226112",
	}))
	if err != nil {
		t.Fatalf("HandleReturn: %v", err)
	}
	if !got.Success || got.ReferenceNumber != booking.ReferenceNumber {
		t.Errorf("got %+v", got)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("booking status = %s, want confirmed", booking.Status)
	}
}

func TestHandleReturnAfterIPNSettled(t *testing.T) {
	svc, fakes := newTestPayment(t)
	_, payment := seedPendingPayment(fakes)
	payment.Status = entity.PaymentStatusCompleted

	got, err := svc.HandleReturn(context.Background(), signedCallback(map[string]string{
		"vnp_TxnRef":       "SPA-20260910-ABCDEF",
		"vnp_ResponseCode": "00",
	}))
	if err != nil {
		t.Fatalf("HandleReturn: %v", err)
	}
	if got.Message != "Payment already processed" {
		t.Errorf("message = %q", got.Message)
	}
}
