package domain

import "strconv"

const (
	DeliveryFee  int64 = 15000
	InsuranceFee int64 = 20000

	CurrencyPrefix = "Rp "
)

// FormatCurrency renders an amount as "Rp 1,234,567".
func FormatCurrency(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	sign := ""
	if amount < 0 {
		sign, s = "-", s[1:]
	}

	n := len(s)
	if n <= 3 {
		return CurrencyPrefix + sign + s
	}

	out := make([]byte, 0, n+(n-1)/3)
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < n; i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return CurrencyPrefix + sign + string(out)
}
