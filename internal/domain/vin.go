package domain

import "strings"

// MinVINLength is the minimum accepted VIN length after normalization.
// A full VIN is 17 characters, but partial lookups down to 5 are allowed.
const MinVINLength = 5

// NormalizeVIN trims and uppercases a raw VIN string. It returns ErrInvalidVin
// when the result is empty or shorter than MinVINLength. No checksum or
// format validation beyond length is performed.
func NormalizeVIN(raw string) (string, error) {
	vin := strings.ToUpper(strings.TrimSpace(raw))
	if vin == "" {
		return "", ErrInvalidVin("please enter a VIN number")
	}
	if len(vin) < MinVINLength {
		return "", ErrInvalidVin("VIN must be at least 5 characters")
	}
	return vin, nil
}
