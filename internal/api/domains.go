package api

import "context"

const (
	domainsPath    = "/domains"
	allDomainsPath = "/domains/all"
)

// VerifiedDomains lists the domains the token may query.
func (c *Client) VerifiedDomains(ctx context.Context) (*VerifiedDomains, error) {
	var result VerifiedDomains
	if _, err := c.get(ctx, domainsPath, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AllDomains lists every domain of the caller with verification, ownership
// and monitoring status plus aggregate stats.
func (c *Client) AllDomains(ctx context.Context) (*AllDomains, error) {
	var result AllDomains
	if _, err := c.get(ctx, allDomainsPath, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckDomainAccess reports whether domain is among the verified domains.
func (c *Client) CheckDomainAccess(ctx context.Context, domain string) (*DomainAccess, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}

	domains, err := c.VerifiedDomains(ctx)
	if err != nil {
		return nil, err
	}

	access := &DomainAccess{AccessibleDomains: []string{}}
	if !domains.Success {
		return access, nil
	}

	for i := range domains.Data {
		d := domains.Data[i]
		access.AccessibleDomains = append(access.AccessibleDomains, d.Domain)
		if d.Domain == domain && access.DomainInfo == nil {
			access.Accessible = true
			access.DomainInfo = &d
		}
	}
	return access, nil
}
