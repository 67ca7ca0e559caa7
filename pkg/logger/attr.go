package logger

import (
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/device"
)

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Device records a classified device as a group of type and code.
func Device(d device.Device) slog.Attr {
	return slog.Group("device",
		slog.String("type", d.Type().String()),
		slog.String("code", d.Code()),
	)
}

// Preference records a stored preference as a group of type and code.
func Preference(d device.Device) slog.Attr {
	return slog.Group("preference",
		slog.String("type", d.Type().String()),
		slog.String("code", d.Code()),
	)
}

// Switcher records the name of the preference switcher involved.
func Switcher(name string) slog.Attr {
	return slog.String("switcher", name)
}

// DeviceCode records a subdomain label. The canonical host is logged as "canonical".
func DeviceCode(code string) slog.Attr {
	if code == "" {
		code = "canonical"
	}
	return slog.String("device_code", code)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
