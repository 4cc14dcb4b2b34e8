package enums

import "fmt"

// UserType is the role recorded on a user document. Values are capitalized
// because the registration flow writes them that way.
type UserType string

const (
	UserTypeAdmin     UserType = "Admin"
	UserTypeLandowner UserType = "Landowner"
	UserTypeSurveyor  UserType = "Surveyor"
	UserTypeProcessor UserType = "Processor"
)

var validUserTypes = []UserType{
	UserTypeAdmin,
	UserTypeLandowner,
	UserTypeSurveyor,
	UserTypeProcessor,
}

// DirectoryUserTypes are the roles the dashboard directory shows; Admin is
// never listed there.
var DirectoryUserTypes = []UserType{
	UserTypeLandowner,
	UserTypeSurveyor,
	UserTypeProcessor,
}

// String implements fmt.Stringer.
func (u UserType) String() string {
	return string(u)
}

// IsValid reports whether the value is a known UserType.
func (u UserType) IsValid() bool {
	for _, candidate := range validUserTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserType converts raw input into a UserType.
func ParseUserType(value string) (UserType, error) {
	for _, candidate := range validUserTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user type %q", value)
}
