// Package netstatus decides whether the hosted model should be tried at all.
// The signal is advisory: a wrong "online" answer only costs one failed
// request before the offline fallback kicks in.
package netstatus

import (
	"context"
	"net/http"
	"sync"
	"time"
)

type Signal interface {
	Online(ctx context.Context) bool
}

// Static always reports the same state. Used when the deployment pins the
// network mode through configuration.
type Static bool

func (s Static) Online(context.Context) bool { return bool(s) }

const (
	probeTimeout  = 3 * time.Second
	probeCacheTTL = 15 * time.Second
)

// Probe checks reachability of a well-known URL and caches the verdict so
// chat traffic does not trigger a probe per message.
type Probe struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	online  bool
	checked time.Time
}

func NewProbe(url string) *Probe {
	return &Probe{
		url:    url,
		client: &http.Client{Timeout: probeTimeout},
	}
}

func (p *Probe) Online(ctx context.Context) bool {
	p.mu.Lock()
	if time.Since(p.checked) < probeCacheTTL {
		online := p.online
		p.mu.Unlock()
		return online
	}
	p.mu.Unlock()

	online := p.check(ctx)

	p.mu.Lock()
	p.online = online
	p.checked = time.Now()
	p.mu.Unlock()
	return online
}

// check treats any HTTP response as connectivity. Status codes do not
// matter; even a 500 proves the network path works.
func (p *Probe) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
