package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseSeatList parses a comma separated seat list like "1, 2,3".
func ParseSeatList(input string) ([]int, error) {
	var seats []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		seat, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid seat number %q", part)
		}
		seats = append(seats, seat)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("invalid seat list: no seat numbers given")
	}
	return seats, nil
}

// FormatSeats renders a seat list like "1, 2, 3".
func FormatSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = strconv.Itoa(seat)
	}
	return strings.Join(parts, ", ")
}
