// Package vnpay implements the VNPay hosted-checkout protocol: a signed
// redirect URL into the gateway and HMAC-SHA512 verification of the
// return-URL and IPN callbacks. Amounts are VND; the wire amount is the
// VND value times 100 per the gateway contract.
package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	version = "2.1.0"
	command = "pay"

	// ResponseCodeSuccess is vnp_ResponseCode for an approved transaction.
	ResponseCodeSuccess = "00"
)

type Client struct {
	tmnCode    string
	hashSecret string
	paymentURL string
	returnURL  string
	now        func() time.Time
}

func NewClient(tmnCode, hashSecret, paymentURL, returnURL string) *Client {
	return &Client{
		tmnCode:    tmnCode,
		hashSecret: hashSecret,
		paymentURL: paymentURL,
		returnURL:  returnURL,
		now:        time.Now,
	}
}

// PaymentURLParams describes one checkout redirect.
type PaymentURLParams struct {
	TxnRef    string  // booking reference number
	Amount    float64 // VND
	OrderInfo string
	Locale    string // "vn" or "en"
	BankCode  string // optional, pins a bank on the gateway page
	IPAddr    string
}

// BuildPaymentURL returns the signed gateway URL the client redirects to.
func (c *Client) BuildPaymentURL(p PaymentURLParams) (string, error) {
	if p.TxnRef == "" {
		return "", fmt.Errorf("txn ref is required")
	}
	if p.Amount <= 0 {
		return "", fmt.Errorf("amount must be positive")
	}

	locale := p.Locale
	if locale == "" {
		locale = "vn"
	}
	ipAddr := p.IPAddr
	if ipAddr == "" {
		ipAddr = "127.0.0.1"
	}

	now := c.now()
	params := map[string]string{
		"vnp_Version":    version,
		"vnp_Command":    command,
		"vnp_TmnCode":    c.tmnCode,
		"vnp_Locale":     locale,
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     p.TxnRef,
		"vnp_OrderInfo":  p.OrderInfo,
		"vnp_OrderType":  "other",
		"vnp_Amount":     fmt.Sprintf("%d", int64(p.Amount*100)),
		"vnp_ReturnUrl":  c.returnURL,
		"vnp_IpAddr":     ipAddr,
		"vnp_CreateDate": now.Format("20060102150405"),
		"vnp_ExpireDate": now.Add(15 * time.Minute).Format("20060102150405"),
	}
	if p.BankCode != "" {
		params["vnp_BankCode"] = p.BankCode
	}

	signData := encodeSorted(params)
	secureHash := c.sign(signData)

	return c.paymentURL + "?" + signData + "&vnp_SecureHash=" + secureHash, nil
}

// VerifyCallback checks the signature of a return-URL or IPN query. The
// vnp_SecureHash and vnp_SecureHashType fields are excluded from the
// signed data, as the gateway does when producing the hash.
func (c *Client) VerifyCallback(query url.Values) bool {
	received := query.Get("vnp_SecureHash")
	if received == "" {
		return false
	}

	params := make(map[string]string, len(query))
	for key := range query {
		if key == "vnp_SecureHash" || key == "vnp_SecureHashType" {
			continue
		}
		params[key] = query.Get(key)
	}

	expected := c.sign(encodeSorted(params))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(received)))
}

func (c *Client) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(c.hashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// encodeSorted builds the canonical sign string: keys sorted ascending,
// values query-escaped (spaces as '+'), joined with '&'.
func encodeSorted(params map[string]string) string {
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
	return b.String()
}
