package consts

const (
	// ContextKeyUserID is where the auth middleware stores the acting user's id
	ContextKeyUserID = "user_id"
)
