package model

// HostKind is the routing decision for an inbound request host
type HostKind int

const (
	// HostMainSite is the bare root domain or its www variant
	HostMainSite HostKind = iota
	// HostTenant is a user's subdomain or verified custom domain
	HostTenant
	// HostNotFound is an unrecognized host
	HostNotFound
)

// Resolution maps a request host to a tenant namespace
type Resolution struct {
	Kind     HostKind
	Username string
}
