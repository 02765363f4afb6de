// Package providers defines the common surface of the simulated KYC
// providers and a registry for capability discovery. Each provider models an
// external verification source: it suspends the caller for a fixed latency
// and then returns canned or pseudo-random data.
package providers

import (
	"fmt"
	"time"
)

// Kind identifies the verification method a provider simulates.
type Kind string

const (
	KindPAN            Kind = "pan"
	KindAadhaar        Kind = "aadhaar"
	KindDigilocker     Kind = "digilocker"
	KindCKYC           Kind = "ckyc"
	KindVideoKYC       Kind = "video_kyc"
	KindOfflineAadhaar Kind = "offline_aadhaar"
)

// Capabilities describes what a simulated provider exposes.
type Capabilities struct {
	Kind Kind `json:"kind"`
	// DisplayName is the human-readable method name shown by demo UIs.
	DisplayName string `json:"display_name"`
	// Attributes lists the fields the provider claims to verify.
	Attributes []string `json:"attributes"`
	// Compliance names the regulation the real-world method operates under.
	Compliance string `json:"compliance"`
	// Latency is the fixed simulated network delay per call.
	Latency time.Duration `json:"latency_ns"`
}

// Provider is implemented by every simulated verification source. Concrete
// lookup methods are typed per provider; the shared interface exists for
// registration and capability listing.
type Provider interface {
	Kind() Kind
	Capabilities() Capabilities
}

// Registry maintains all registered providers.
type Registry struct {
	providers map[Kind]Provider
	order     []Kind
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[Kind]Provider)}
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider) error {
	kind := p.Kind()
	if _, exists := r.providers[kind]; exists {
		return fmt.Errorf("provider %s already registered", kind)
	}
	r.providers[kind] = p
	r.order = append(r.order, kind)
	return nil
}

// Get retrieves a provider by kind.
func (r *Registry) Get(kind Kind) (Provider, bool) {
	p, ok := r.providers[kind]
	return p, ok
}

// All returns all registered providers in registration order.
func (r *Registry) All() []Provider {
	out := make([]Provider, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, r.providers[kind])
	}
	return out
}
