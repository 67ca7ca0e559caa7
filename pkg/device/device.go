package device

import "strings"

// Type identifies the device category a request belongs to.
type Type uint8

const (
	// TypeNormal identifies desktop-like clients. It is the fallback category.
	TypeNormal Type = iota
	// TypeMobile identifies phones and feature phones.
	TypeMobile
	// TypeTablet identifies tablets.
	TypeTablet
)

// String returns the lower-case name of the type.
func (t Type) String() string {
	switch t {
	case TypeMobile:
		return NameMobile
	case TypeTablet:
		return NameTablet
	default:
		return NameNormal
	}
}

// ParseType maps a type name back to a Type. Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNormal:
		return TypeNormal, nil
	case NameMobile:
		return TypeMobile, nil
	case NameTablet:
		return TypeTablet, nil
	default:
		return TypeNormal, ErrUnknownType
	}
}

// Device is an immutable device variant. Two devices are equal when both
// their type and code are equal, so values can be compared with ==.
type Device struct {
	typ  Type
	code string
}

// Type returns the device category.
func (d Device) Type() Type { return d.typ }

// Code returns the subdomain label used for this device.
// Normal devices have an empty code which stands for the canonical host.
func (d Device) Code() string { return d.code }

func (d Device) IsNormal() bool { return d.typ == TypeNormal }
func (d Device) IsMobile() bool { return d.typ == TypeMobile }
func (d Device) IsTablet() bool { return d.typ == TypeTablet }

// String implements fmt.Stringer.
func (d Device) String() string { return d.typ.String() }
