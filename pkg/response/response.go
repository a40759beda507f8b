package response

// Body shapes here are part of the wire contract and must not grow fields.
// Failures carry a single human-readable message; a successful login carries
// only the token. Internal failure detail stays server-side.

type Message struct {
	Message string `json:"message"`
}

type Token struct {
	Token string `json:"token"`
}

// Canonical messages. Unknown-username and wrong-password logins must
// produce byte-identical bodies, so both use MsgAuthFailed.
const (
	MsgUserCreated    = "User created successfully"
	MsgInternalError  = "Internal server error"
	MsgAuthFailed     = "Authentication failed"
	MsgUserNotFound   = "User not found"
	MsgInvalidRequest = "Invalid request body"
)
