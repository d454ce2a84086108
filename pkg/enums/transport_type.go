package enums

import "fmt"

// TransportType describes the service level of a shipment slot.
type TransportType string

const (
	TransportTypeStandard TransportType = "standard"
	TransportTypeExpress  TransportType = "express"
	TransportTypePriority TransportType = "priority"
)

var validTransportTypes = []TransportType{
	TransportTypeStandard,
	TransportTypeExpress,
	TransportTypePriority,
}

// String implements fmt.Stringer.
func (t TransportType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TransportType.
func (t TransportType) IsValid() bool {
	for _, candidate := range validTransportTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransportType converts raw input into a TransportType.
func ParseTransportType(value string) (TransportType, error) {
	for _, candidate := range validTransportTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transport type %q", value)
}
