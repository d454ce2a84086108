package enums

import "fmt"

// PackageType classifies the contents of a package.
type PackageType string

const (
	PackageTypeDocument    PackageType = "document"
	PackageTypeClothing    PackageType = "clothing"
	PackageTypeElectronics PackageType = "electronics"
	PackageTypeFood        PackageType = "food"
	PackageTypeOther       PackageType = "other"
)

var validPackageTypes = []PackageType{
	PackageTypeDocument,
	PackageTypeClothing,
	PackageTypeElectronics,
	PackageTypeFood,
	PackageTypeOther,
}

// String implements fmt.Stringer.
func (p PackageType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PackageType.
func (p PackageType) IsValid() bool {
	for _, candidate := range validPackageTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePackageType converts raw input into a PackageType.
func ParsePackageType(value string) (PackageType, error) {
	for _, candidate := range validPackageTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid package type %q", value)
}
