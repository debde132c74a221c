package domain

// Client-facing messages.
const (
	MsgUsernameFormat      = "Username must be 3-30 characters, lowercase letters, numbers, dots, or underscores only"
	MsgUsernameDoubleDot   = "Username cannot contain consecutive dots"
	MsgUsernameEdgeDot     = "Username cannot start or end with a dot"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgPostEmpty           = "Post must have a caption, image, or video"
	MsgInvalidImageURL     = "Invalid image URL"
	MsgInvalidVideoURL     = "Invalid video URL"
	MsgInvalidCredentials  = "Invalid username or password"
	MsgUsernameTaken       = "Username already taken"
	MsgNotAuthenticated    = "Not authenticated"
	MsgPostsUnauthorized   = "Unauthorized - please login"
	MsgPostIDRequired      = "Post ID required"
	MsgPostNotFound        = "Post not found"
	MsgDeleteNotOwner      = "You can only delete your own posts"
	MsgUserNotFound        = "User not found"
	MsgInvalidRequestBody  = "Invalid JSON body"
	MsgInvalidAction       = "Invalid action"
	MsgInternalServerError = "Internal server error"
)
