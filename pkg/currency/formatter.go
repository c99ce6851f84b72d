package currency

import (
	"fmt"
	"math"
)

// Format renders a rounded amount for display, with the thousands
// separator and symbol conventions of the given currency code.
func Format(amount float64, code string) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	sep, prefix := conventions(code)

	intStr := fmt.Sprintf("%.0f", rounded)
	formatted := prefix + addThousandsSeparator(intStr, sep)

	if negative {
		formatted = "-" + formatted
	}

	return formatted
}

func conventions(code string) (sep, prefix string) {
	switch code {
	case "IDR":
		return ".", "IDR "
	case "USD":
		return ",", "$"
	case "EUR":
		return ",", "€"
	default:
		return ",", code + " "
	}
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
