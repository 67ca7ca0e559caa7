package device

import (
	"fmt"
	"strings"
)

// Factory produces the three device variants.
type Factory interface {
	Normal() Device
	Mobile() Device
	Tablet() Device
}

// CodeFactory is a Factory whose mobile and tablet devices carry
// configurable subdomain codes.
type CodeFactory struct {
	normal Device
	mobile Device
	tablet Device
}

// DefaultFactory uses the default "m" and "t" subdomain labels.
var DefaultFactory = MustNewFactory(DefaultMobileCode, DefaultTabletCode)

// NewFactory returns a factory for the given subdomain labels.
// Labels must be non-empty, distinct and free of dots and slashes.
func NewFactory(mobileCode, tabletCode string) (*CodeFactory, error) {
	mobileCode = strings.ToLower(strings.TrimSpace(mobileCode))
	tabletCode = strings.ToLower(strings.TrimSpace(tabletCode))

	for _, code := range []string{mobileCode, tabletCode} {
		if code == "" || strings.ContainsAny(code, "./: ") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
		}
	}
	if mobileCode == tabletCode {
		return nil, fmt.Errorf("%w: mobile and tablet codes are both %q", ErrInvalidCode, mobileCode)
	}

	return &CodeFactory{
		normal: Device{typ: TypeNormal},
		mobile: Device{typ: TypeMobile, code: mobileCode},
		tablet: Device{typ: TypeTablet, code: tabletCode},
	}, nil
}

// MustNewFactory is like NewFactory but panics on invalid codes.
func MustNewFactory(mobileCode, tabletCode string) *CodeFactory {
	f, err := NewFactory(mobileCode, tabletCode)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *CodeFactory) Normal() Device { return f.normal }
func (f *CodeFactory) Mobile() Device { return f.mobile }
func (f *CodeFactory) Tablet() Device { return f.tablet }

// ByType returns the device of the given type.
func (f *CodeFactory) ByType(t Type) Device {
	switch t {
	case TypeMobile:
		return f.mobile
	case TypeTablet:
		return f.tablet
	default:
		return f.normal
	}
}

// ByCode returns the device whose subdomain label equals code.
// An empty code resolves to the normal device.
func (f *CodeFactory) ByCode(code string) (Device, error) {
	switch strings.ToLower(code) {
	case "":
		return f.normal, nil
	case f.mobile.code:
		return f.mobile, nil
	case f.tablet.code:
		return f.tablet, nil
	default:
		return f.normal, fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
}

// Parse resolves either a type name ("mobile") or a subdomain label ("m").
func (f *CodeFactory) Parse(value string) (Device, error) {
	if t, err := ParseType(value); err == nil {
		return f.ByType(t), nil
	}
	return f.ByCode(strings.TrimSpace(value))
}

// Codes returns the non-empty subdomain labels known to the factory.
func (f *CodeFactory) Codes() []string {
	return []string{f.mobile.code, f.tablet.code}
}
