package service

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"github.com/legworkmedia/rnotes/api/internal/contact"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const mxLookupTimeout = 3 * time.Second

// DNSResolver abstracts DNS lookups to simplify testing.
type DNSResolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}

// FieldChecker inspects scraped job fields and reports problems the
// coordinator should fix before the job folder is created. Problems are
// warnings, never hard failures.
type FieldChecker struct {
	dnsResolver DNSResolver
}

// FieldCheckerOption configures optional dependencies.
type FieldCheckerOption func(*FieldChecker)

// WithDNSResolver overrides the default DNS resolver. A nil resolver disables MX checks.
func WithDNSResolver(resolver DNSResolver) FieldCheckerOption {
	return func(c *FieldChecker) {
		c.dnsResolver = resolver
	}
}

// NewFieldChecker builds a checker backed by the system resolver.
func NewFieldChecker(opts ...FieldCheckerOption) *FieldChecker {
	c := &FieldChecker{dnsResolver: systemDNSResolver{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns human-readable warnings for the email and phone fields.
func (c *FieldChecker) Check(ctx context.Context, fields contact.SourceFields) []string {
	var warnings []string
	if w := c.checkEmail(ctx, fields.Email); w != "" {
		warnings = append(warnings, w)
	}
	for _, slot := range []contact.PhoneSlot{contact.PrimaryPhone, contact.SecondaryPhone} {
		raw := fields.PhoneFor(slot)
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if _, err := contact.ParsePhoneField(raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("Phone %d has no recognizable 10-digit number.", slot))
		}
	}
	return warnings
}

func (c *FieldChecker) checkEmail(ctx context.Context, raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if !emailPattern.MatchString(email) {
		return fmt.Sprintf("Email %q does not look valid.", raw)
	}
	_, domain, _ := strings.Cut(email, "@")
	if !isDomainValid(domain) {
		return fmt.Sprintf("Email %q does not look valid.", raw)
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	if err != nil || asciiDomain == "" {
		return fmt.Sprintf("Email %q does not look valid.", raw)
	}
	if c.dnsResolver != nil && !c.hasMXRecord(ctx, asciiDomain) {
		return fmt.Sprintf("Email domain %s does not accept mail.", asciiDomain)
	}
	return ""
}

func (c *FieldChecker) hasMXRecord(ctx context.Context, domain string) bool {
	ctx, cancel := context.WithTimeout(ctx, mxLookupTimeout)
	defer cancel()
	records, err := c.dnsResolver.LookupMX(ctx, domain)
	return err == nil && len(records) > 0
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

type systemDNSResolver struct{}

func (systemDNSResolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	return net.DefaultResolver.LookupMX(ctx, domain)
}
