package constants

// User roles
const (
	RoleUser         = 0
	RoleReceptionist = 1
	RoleAdmin        = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Confirmation code
const (
	ConfirmationCodeLength = 8
	CodeGenerationMaxRetry = 3
)
