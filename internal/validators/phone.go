package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos. "(11) 98888-7777" e
// "11988887777" viram a mesma chave de deduplicação.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
