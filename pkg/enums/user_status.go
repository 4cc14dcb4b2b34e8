package enums

// UserStatus is the lifecycle label on a user document. The column is free
// text in practice (the registration flow has written values like
// "email_not_verified"), so reads never reject unknown statuses; IsKnown
// only reports whether the value is one this system reasons about.
type UserStatus string

const (
	UserStatusPending          UserStatus = "Pending"
	UserStatusActive           UserStatus = "Active"
	UserStatusVerified         UserStatus = "Verified"
	UserStatusInactive         UserStatus = "Inactive"
	UserStatusEmailNotVerified UserStatus = "email_not_verified"
)

var knownUserStatuses = []UserStatus{
	UserStatusPending,
	UserStatusActive,
	UserStatusVerified,
	UserStatusInactive,
	UserStatusEmailNotVerified,
}

// String implements fmt.Stringer.
func (u UserStatus) String() string {
	return string(u)
}

// IsKnown reports whether the value is a status this system reasons about.
func (u UserStatus) IsKnown() bool {
	for _, candidate := range knownUserStatuses {
		if candidate == u {
			return true
		}
	}
	return false
}
