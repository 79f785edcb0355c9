package entity

// MailKind selects the template the mail worker renders.
type MailKind string

const (
	MailKindConfirmEmail  MailKind = "confirm_email"
	MailKindPasswordReset MailKind = "password_reset"
)

// IsValid reports whether k is a known kind.
func (k MailKind) IsValid() bool {
	switch k {
	case MailKindConfirmEmail, MailKindPasswordReset:
		return true
	default:
		return false
	}
}
