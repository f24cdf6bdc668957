package finance

import (
	"strconv"
	"strings"
	"unicode"
)

// Payment method types known to the detector.
const (
	PaymentTypeCreditCard = "Credit Card"
	PaymentTypeOther      = "Other"
	PaymentTypeGCash      = "GCash"
)

// ProviderUnknown is reported for card-like numbers no rule matches.
const ProviderUnknown = "Unknown"

// Detection is a suggestion for the payment type and provider of an account number.
type Detection struct {
	Type     string `json:"type" example:"Credit Card"` // Suggested payment method type
	Provider string `json:"provider" example:"Visa"`    // Detected provider
	IsValid  bool   `json:"isValid" example:"true"`     // Whether the number has a valid length for the provider
}

type cardRule struct {
	provider string
	lengths  []int
	prefixes []prefixRange
}

// prefixRange matches numbers whose leading digits, read as an integer, are in [from, to].
type prefixRange struct {
	digits   int
	from, to int
}

func (p prefixRange) matches(number string) bool {
	if len(number) < p.digits {
		return false
	}

	n, err := strconv.Atoi(number[:p.digits])
	if err != nil {
		return false
	}
	return n >= p.from && n <= p.to
}

func exact(prefix int, digits int) prefixRange {
	return prefixRange{digits: digits, from: prefix, to: prefix}
}

// First match wins.
var cardRules = []cardRule{
	{"Visa", []int{13, 16}, []prefixRange{exact(4, 1)}},
	{"Mastercard", []int{16}, []prefixRange{{2, 51, 55}, {4, 2221, 2720}}},
	{"American Express", []int{15}, []prefixRange{exact(34, 2), exact(37, 2)}},
	{"Discover", []int{16}, []prefixRange{exact(6011, 4), exact(65, 2), {3, 644, 649}}},
	{"JCB", []int{16}, []prefixRange{exact(35, 2)}},
	{"Diners Club", []int{14}, []prefixRange{exact(36, 2), exact(38, 2)}},
}

func (r cardRule) matches(number string) bool {
	lengthOK := false
	for _, l := range r.lengths {
		if len(number) == l {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return false
	}

	for _, p := range r.prefixes {
		if p.matches(number) {
			return true
		}
	}
	return false
}

// digitsOnly strips every non-digit character.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// DetectPaymentProvider suggests a payment type and provider for an account number.
//
// It returns nil when there is no suggestion. A currentType other than
// "Credit Card" or "Other" suppresses detection so that an explicit e-wallet
// choice is never overridden.
//
// Numbers of 11 digits starting with "09" are always reported as GCash, other
// e-wallets using mobile numbers cannot be told apart.
func DetectPaymentProvider(accountNumber, currentType string) *Detection {
	if len(strings.TrimFunc(accountNumber, unicode.IsSpace)) < 4 {
		return nil
	}

	if currentType != "" && currentType != PaymentTypeCreditCard && currentType != PaymentTypeOther {
		return nil
	}

	number := digitsOnly(accountNumber)

	for _, rule := range cardRules {
		if rule.matches(number) {
			return &Detection{
				Type:     PaymentTypeCreditCard,
				Provider: rule.provider,
				IsValid:  len(number) >= 13 && len(number) <= 19,
			}
		}
	}

	if len(number) == 11 && strings.HasPrefix(number, "09") {
		return &Detection{
			Type:     PaymentTypeGCash,
			Provider: PaymentTypeGCash,
			IsValid:  true,
		}
	}

	if len(number) >= 13 && len(number) <= 19 {
		return &Detection{
			Type:     PaymentTypeCreditCard,
			Provider: ProviderUnknown,
			IsValid:  false,
		}
	}

	return nil
}

// FormatCardNumber groups the digits of a card number in blocks of four.
func FormatCardNumber(accountNumber string) string {
	number := digitsOnly(accountNumber)

	var b strings.Builder
	for i, r := range number {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LastFour returns the last four digits of an account number.
func LastFour(accountNumber string) string {
	number := digitsOnly(accountNumber)
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
