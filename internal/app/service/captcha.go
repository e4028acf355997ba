package service

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

const (
	CodeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateCode no es criptográficamente seguro; sólo tiene que ser difícil de adivinar por un bot tonto.
func GenerateCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}

var reHexColor = regexp.MustCompile(`(?i)^#([0-9A-F]{3}){1,2}$`)

func ValidColor(s string) bool { return reHexColor.MatchString(s) }

// ParseColor convierte "#0af" / "#00aaff" al entero que usa Discord en los embeds.
func ParseColor(s string) (int, error) {
	if !ValidColor(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return int(v), nil
}
