package domain

var (
	MessageFailedIssueToken = "failed to issue token"
	MessageMissingIdentity  = "identity email is required"
)

// Identity is the claim payload a caller presents on POST /jwt. It is
// signed as-is; only the email field is required and later compared
// against owner emails on identity-scoped routes.
type Identity map[string]any

func (i Identity) Email() string {
	email, _ := i["email"].(string)
	return email
}
