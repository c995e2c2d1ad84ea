package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// PaymentType is the wire-level payment enum.
type PaymentType string

const (
	PaymentTypeATM          PaymentType = "ATM"
	PaymentTypeClinic       PaymentType = "CLINIC"
	PaymentTypeWallet       PaymentType = "WALLET"
	PaymentTypeCash         PaymentType = "CASH"
	PaymentTypeBankTransfer PaymentType = "BANK_TRANSFER"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeATM, PaymentTypeClinic, PaymentTypeWallet, PaymentTypeCash, PaymentTypeBankTransfer:
		return true
	}
	return false
}

// IsGateway reports whether the type goes through the online payment gateway.
func (t PaymentType) IsGateway() bool {
	return t == PaymentTypeATM
}

// WirePaymentType maps a client-side method label onto the wire enum.
// The gateway-backed labels (vnpay, ewallet, bank) all collapse to ATM;
// wire values pass through unchanged.
func WirePaymentType(method string) (PaymentType, error) {
	switch method {
	case "vnpay", "ewallet", "bank", "card":
		return PaymentTypeATM, nil
	case "clinic":
		return PaymentTypeClinic, nil
	}
	if t := PaymentType(method); t.Valid() {
		return t, nil
	}
	return "", fmt.Errorf("invalid payment method %q", method)
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type Payment struct {
	BaseNoDelete
	BookingID     uuid.UUID     `db:"booking_id"`
	Amount        float64       `db:"amount"`
	Currency      string        `db:"currency"`
	PaymentType   PaymentType   `db:"payment_type"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
}
