package v1view

type Token struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}
