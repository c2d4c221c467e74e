package auth

// SignInCredentials is the sign-in input.
type SignInCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignedUser is returned on a successful sign-in.
type SignedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
