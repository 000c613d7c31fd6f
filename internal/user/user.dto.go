package user

type CreateUserRequest struct {
	ClerkID       string `json:"clerkId"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ImageURL      string `json:"imageUrl,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}
