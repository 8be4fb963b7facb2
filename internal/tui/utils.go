package tui

import "strconv"

// values at or above this mean the account has no daily cap
const unlimitedThreshold = 999

func formatRemaining(remaining int) string {
	if remaining >= unlimitedThreshold {
		return "unlimited"
	}

	return strconv.Itoa(remaining)
}
