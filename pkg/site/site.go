package site

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/webgrant/pkg/async"
	"github.com/dmitrymomot/webgrant/pkg/entitlement"
	"github.com/dmitrymomot/webgrant/pkg/logger"
	"github.com/dmitrymomot/webgrant/pkg/signer"
	"github.com/dmitrymomot/webgrant/pkg/tokencache"
	"github.com/dmitrymomot/webgrant/pkg/wire"
)

// Site parses client entitlement tokens on behalf of one client id.
// All methods are safe for concurrent use.
type Site struct {
	clientID     string
	features     []entitlement.Feature
	verifier     signer.Verifier
	cache        *tokencache.Cache
	log          *slog.Logger
	now          func() time.Time
	bypassCache  bool
	serverHeader string
}

// Option customizes Site construction.
type Option func(*Site)

// WithVerifier replaces the configured verification key with an explicit
// verifier implementation.
func WithVerifier(v signer.Verifier) Option {
	return func(s *Site) { s.verifier = v }
}

// WithCache injects a shared cache instance; by default each Site owns
// its own cache with default bounds.
func WithCache(c *tokencache.Cache) Option {
	return func(s *Site) { s.cache = c }
}

// WithLogger sets the logger for decode-failure warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Site) { s.log = l }
}

// WithClock overrides the time source; for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

// New validates the configuration and builds the site facade. The server
// participation header is computed once here and fixed for the Site's
// lifetime.
func New(cfg Config, opts ...Option) (*Site, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}

	s := &Site{
		clientID:     cfg.ClientID,
		features:     cfg.Features,
		now:          time.Now,
		bypassCache:  cfg.CacheBypass,
		serverHeader: EncodeServerHeader(cfg.ClientID, cfg.Features),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.verifier == nil {
		v, err := cfg.verifier()
		if err != nil {
			return nil, err
		}
		s.verifier = v
	}
	if s.cache == nil {
		c, err := tokencache.New(tokencache.DefaultConfig())
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	return s, nil
}

// Cache exposes the site's cache instance for host-driven
// reconfiguration.
func (s *Site) Cache() *tokencache.Cache {
	return s.cache
}

// ServerHeader returns the participation-advertisement header value,
// fixed at construction.
func (s *Site) ServerHeader() string {
	return s.serverHeader
}

// ParseClientToken turns raw header value(s) into the site's entitlement
// context. When multiple values are supplied only the first is used.
//
// The pipeline consults the cache by exact raw string, falls back to a
// decode-and-verify dispatched off the calling goroutine, caches the
// outcome (including undecodable inputs), and derives the context at the
// current instant. It never returns an error: every failure degrades to
// the all-false context, with decode failures logged once at warn level.
func (s *Site) ParseClientToken(ctx context.Context, headerValues ...string) entitlement.Context {
	var header string
	if len(headerValues) > 0 {
		header = headerValues[0]
	}
	if header == "" {
		return entitlement.AllFalse()
	}

	now := s.now()

	if !s.bypassCache {
		if e, ok := s.cache.Get(header, now); ok {
			// Context is derived fresh even on a hit; only the payload
			// is cached. A nil payload is a remembered decode failure.
			return entitlement.BuildContext(e.Payload, s.clientID, s.features, now)
		}
	}

	fut := async.Async(ctx, header, func(_ context.Context, h string) (wire.DecodedClientHeader, error) {
		return wire.Decode(h, s.verifier)
	})
	decoded, err := fut.Await()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return entitlement.AllFalse()
		}
		s.log.WarnContext(ctx, "client token rejected",
			logger.Reason(err.Error()),
			logger.ClientID(s.clientID),
		)
		if !s.bypassCache {
			s.cache.Put(header, nil, now)
		}
		return entitlement.AllFalse()
	}

	payload := &decoded
	if !s.bypassCache {
		s.cache.Put(header, payload, now)
	}
	return entitlement.BuildContext(payload, s.clientID, s.features, now)
}
