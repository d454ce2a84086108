package enums

import "fmt"

// TravelClass describes the cabin a reservation is booked in.
type TravelClass string

const (
	TravelClassEconomy  TravelClass = "Economy"
	TravelClassBusiness TravelClass = "Business"
	TravelClassFirst    TravelClass = "First"
)

var validTravelClasses = []TravelClass{
	TravelClassEconomy,
	TravelClassBusiness,
	TravelClassFirst,
}

// String implements fmt.Stringer.
func (c TravelClass) String() string {
	return string(c)
}

// IsValid reports whether the value is a known TravelClass.
func (c TravelClass) IsValid() bool {
	for _, candidate := range validTravelClasses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseTravelClass converts raw input into a TravelClass.
func ParseTravelClass(value string) (TravelClass, error) {
	for _, candidate := range validTravelClasses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid travel class %q", value)
}
