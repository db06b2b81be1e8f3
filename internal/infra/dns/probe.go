package dns

import (
	"context"
	"net"
	"time"
)

// Prober verifica se um domínio resolve — a heurística de "já tem site".
// Consultiva por contrato: qualquer erro (timeout, NXDOMAIN, rede fora)
// conta como "não resolve" e o candidato é mantido.
type Prober struct {
	resolver *net.Resolver
	timeout  time.Duration
}

func NewProber() *Prober {
	return &Prober{
		resolver: net.DefaultResolver,
		timeout:  3 * time.Second,
	}
}

func (p *Prober) Resolves(ctx context.Context, domain string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	addrs, err := p.resolver.LookupHost(ctx, domain)
	return err == nil && len(addrs) > 0
}
