package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Resolver is the subset of *net.Resolver used for domain checks.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// EmailDomainChecker reports whether the domain of an email address can
// receive mail: it has an MX record or at least resolves to a host.
type EmailDomainChecker struct {
	resolver Resolver
	timeout  time.Duration
}

func NewEmailDomainChecker(resolver Resolver, timeout time.Duration) *EmailDomainChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &EmailDomainChecker{resolver: resolver, timeout: timeout}
}

func (c *EmailDomainChecker) Valid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if mx, err := c.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if hosts, err := c.resolver.LookupHost(ctx, domain); err == nil && len(hosts) > 0 {
		return true
	}

	return false
}
