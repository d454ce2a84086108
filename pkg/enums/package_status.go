package enums

import "fmt"

// PackageStatus tracks where a package sits in its delivery lifecycle.
// Transition order is not enforced: any valid status can replace any other.
type PackageStatus string

const (
	PackageStatusPending   PackageStatus = "pending"
	PackageStatusInTransit PackageStatus = "in_transit"
	PackageStatusDelivered PackageStatus = "delivered"
)

var validPackageStatuses = []PackageStatus{
	PackageStatusPending,
	PackageStatusInTransit,
	PackageStatusDelivered,
}

// String implements fmt.Stringer.
func (s PackageStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PackageStatus.
func (s PackageStatus) IsValid() bool {
	for _, candidate := range validPackageStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePackageStatus converts raw input into a PackageStatus.
func ParsePackageStatus(value string) (PackageStatus, error) {
	for _, candidate := range validPackageStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid package status %q", value)
}
