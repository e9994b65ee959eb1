package utils

import "strconv"

// FormatDisplayPrice renders a raw vendor price as the cosmetic string shown
// in recommendation cards. Indian digit grouping (12,34,567), rupee sign,
// "onwards" suffix. Never persisted.
func FormatDisplayPrice(price int64) string {
	if price <= 0 {
		return "Price on request"
	}
	return "₹" + GroupIndianDigits(price) + " onwards"
}

// GroupIndianDigits inserts lakh/crore separators: 1234567 -> "12,34,567".
func GroupIndianDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var grouped []byte
	for len(head) > 2 {
		grouped = append([]byte{head[len(head)-2], head[len(head)-1], ','}, grouped...)
		head = head[:len(head)-2]
	}
	if head != "" {
		grouped = append([]byte(head+","), grouped...)
	}
	return string(grouped) + tail
}
