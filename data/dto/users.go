package dto

// CreateUserRequestBody defines a request body for CreateUser service.
type CreateUserRequestBody struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Permissions []string `json:"permissions"`
}

// GrantPermissionsRequestBody defines a request body for GrantPermissions service.
type GrantPermissionsRequestBody struct {
	Permissions []string `json:"permissions"`
}

// LoginForm holds the submitted values of the login page.
type LoginForm struct {
	Email    string
	Password string
	Next     string
}
