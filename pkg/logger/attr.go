package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Reason records a rejection reason under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// ClientID records the site identifier under the key "client_id".
func ClientID(id string) slog.Attr {
	return slog.String("client_id", id)
}

// CacheSize records the token cache entry count under the key "cache_size".
func CacheSize(n int) slog.Attr {
	return slog.Int("cache_size", n)
}
