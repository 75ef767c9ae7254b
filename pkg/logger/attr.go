package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// An empty id returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Client groups a classification under the key "client". Absent fields are
// omitted.
func Client(platform, browser, version string) slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	if platform != "" {
		attrs = append(attrs, slog.String("platform", platform))
	}
	if browser != "" {
		attrs = append(attrs, slog.String("browser", browser))
	}
	if version != "" {
		attrs = append(attrs, slog.String("version", version))
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "client", Value: slog.GroupValue(attrs...)}
}

// Count records a number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
