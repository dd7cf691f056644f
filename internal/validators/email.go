package validators

import (
	"net"
	"net/mail"
	"strings"
)

// ValidEmailFormat faz a checagem sintática (RFC 5322) sem tocar a rede.
func ValidEmailFormat(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsEmailDomainValid resolve o domínio do e-mail: MX primeiro, A/AAAA
// como fallback. Faz lookup de DNS, então não usar em caminhos quentes.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
