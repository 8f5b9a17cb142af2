package tracker

import "github.com/aretw0/b3270/pkg/domain"

// SecuritySource supplies the TLS posture of the session.
type SecuritySource interface {
	Security() domain.SecurityInfo
}

// Security reports flips of the secure flag.
type Security struct {
	source  SecuritySource
	emitter Emitter
	secure  bool
}

// NewSecurity creates a tracker that starts out insecure.
func NewSecurity(source SecuritySource, emitter Emitter) *Security {
	return &Security{source: source, emitter: emitter}
}

// Notify reads the engine's current posture and passes it to Observe.
func (s *Security) Notify() {
	s.Observe(s.source.Security())
}

// Observe emits an ssl event if the secure flag differs from the last report.
func (s *Security) Observe(info domain.SecurityInfo) {
	if info.Secure == s.secure {
		return
	}
	s.secure = info.Secure

	verified := domain.Bool("verified", info.Verified)
	verified.Present = info.Secure
	s.emitter.Emit(domain.TagSSL,
		domain.Bool("secure", info.Secure),
		verified,
		domain.NonEmpty("session", info.Session),
		domain.NonEmpty("host-cert", info.HostCert),
	)
}
