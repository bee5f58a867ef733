package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailSyntaxValid accepts a bare address only, no display name.
func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@")+1:], ".")
}

// IsEmailDomainValid additionally requires the domain to resolve (MX or A/AAAA).
func IsEmailDomainValid(email string) bool {
	if !IsEmailSyntaxValid(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
