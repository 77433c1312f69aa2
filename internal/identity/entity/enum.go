package entity

type UserStatus int16

const (
	// UserStatusUnknown is mean status is not known / not set.
	UserStatusUnknown UserStatus = 0

	// UserStatusUnverified mean user exists but has not completed verification.
	UserStatusUnverified UserStatus = 1

	// UserStatusActive mean user is verified and allowed to use the app.
	UserStatusActive UserStatus = 2

	// UserStatusBanned mean user is blocked from using the app (policy/abuse/etc).
	UserStatusBanned UserStatus = 3

	// UserStatusInactive mean user is not currently active (e.g., deactivated, closed).
	UserStatusInactive UserStatus = 4
)

func (us UserStatus) String() string {
	switch us {
	case UserStatusActive:
		return "Active"
	case UserStatusBanned:
		return "Banned"
	case UserStatusInactive:
		return "Inactive"
	case UserStatusUnverified:
		return "Unverified"
	default:
		return "Unknown"
	}
}

func (us UserStatus) Ensure() UserStatus {
	switch us {
	case UserStatusActive:
		return UserStatusActive
	case UserStatusBanned:
		return UserStatusBanned
	case UserStatusInactive:
		return UserStatusInactive
	case UserStatusUnverified:
		return UserStatusUnverified
	default:
		return UserStatusUnknown
	}
}

// Role names match the casbin grouping rules and the landing destination map.
const (
	RoleAdmin        = "Admin"
	RoleManager      = "Manager"
	RoleProductOwner = "ProductOwner"
	RoleStoreUser    = "StoreUser"
	RoleCustomer     = "Customer"
)

type OtpPurpose int16

const (
	OtpPurposeUnknown       OtpPurpose = 0
	OtpPurposeRegistration  OtpPurpose = 1
	OtpPurposeLogin         OtpPurpose = 2
	OtpPurposePasswordReset OtpPurpose = 3
)

func (p OtpPurpose) String() string {
	switch p {
	case OtpPurposeRegistration:
		return "Registration"
	case OtpPurposeLogin:
		return "Login"
	case OtpPurposePasswordReset:
		return "PasswordReset"
	default:
		return "Unknown"
	}
}
