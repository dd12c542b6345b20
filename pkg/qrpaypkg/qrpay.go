// Package qrpaypkg builds QR Platba (SPD) payment payloads and encodes them as QR images.
package qrpaypkg

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	// Currency is the only settlement currency of the studio.
	Currency = "CZK"

	maxVariableSymbolLen = 10
	maxMessageLen        = 60

	pngSize = 256
)

// FormatAmount renders a decimal amount the way the SPD standard expects,
// a dot separator with exactly two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// SPD builds an SPD 1.0 payment descriptor string understood by Czech banking apps.
//
// The variable symbol and message are truncated to the lengths the
// standard allows.
func SPD(iban string, amount decimal.Decimal, variableSymbol, message string) string {
	vs := TruncateRunes(variableSymbol, maxVariableSymbolLen)
	msg := TruncateRunes(strings.TrimSpace(message), maxMessageLen)

	parts := []string{
		"SPD*1.0",
		"ACC:" + iban,
		"AM:" + FormatAmount(amount),
		"CC:" + Currency,
	}

	if vs != "" {
		parts = append(parts, "X-VS:"+vs)
	}

	if msg != "" {
		parts = append(parts, "MSG:"+msg)
	}

	return strings.Join(parts, "*")
}

// TruncateRunes shortens s to at most max characters. Slicing by runes
// keeps names with diacritics valid UTF-8.
func TruncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}

	return string(r[:max])
}

// PaymentNote builds the payload encoded into direct payment QR codes.
func PaymentNote(amount decimal.Decimal, client, instructor string) string {
	return fmt.Sprintf("amount:%s|client:%s|instructor:%s", FormatAmount(amount), client, instructor)
}

// EncodePNG renders the payload as a PNG QR code.
func EncodePNG(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, pngSize)
}
