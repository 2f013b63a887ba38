package surface

import "fmt"

// RootLabel names the root of the given order: "square root" for 2,
// otherwise the ordinal ("3rd root", "8th root", "21st root").
func RootLabel(order int) string {
	if order == 2 {
		return "square root"
	}
	return Ordinal(order) + " root"
}

// Title is the figure heading for an order.
func Title(order int) string {
	return fmt.Sprintf("Riemann surface of the %s (%d sheets)", RootLabel(order), order)
}

// Ordinal formats n with its English suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
