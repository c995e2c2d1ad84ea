package entity

import "testing"

func TestWirePaymentType(t *testing.T) {
	tests := []struct {
		method  string
		want    PaymentType
		wantErr bool
	}{
		// client labels
		{"vnpay", PaymentTypeATM, false},
		{"ewallet", PaymentTypeATM, false},
		{"bank", PaymentTypeATM, false},
		{"card", PaymentTypeATM, false},
		{"clinic", PaymentTypeClinic, false},
		// wire values pass through
		{"ATM", PaymentTypeATM, false},
		{"CLINIC", PaymentTypeClinic, false},
		{"WALLET", PaymentTypeWallet, false},
		{"CASH", PaymentTypeCash, false},
		{"BANK_TRANSFER", PaymentTypeBankTransfer, false},
		// everything else errors
		{"", "", true},
		{"paypal", "", true},
		{"atm", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := WirePaymentType(tt.method)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("WirePaymentType(%q) = %q, want error", tt.method, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("WirePaymentType(%q) error: %v", tt.method, err)
			}
			if got != tt.want {
				t.Fatalf("WirePaymentType(%q) = %q, want %q", tt.method, got, tt.want)
			}
		})
	}
}

func TestPaymentTypeIsGateway(t *testing.T) {
	if !PaymentTypeATM.IsGateway() {
		t.Error("ATM should go through the gateway")
	}
	for _, pt := range []PaymentType{PaymentTypeClinic, PaymentTypeWallet, PaymentTypeCash, PaymentTypeBankTransfer} {
		if pt.IsGateway() {
			t.Errorf("%s should not go through the gateway", pt)
		}
	}
}
