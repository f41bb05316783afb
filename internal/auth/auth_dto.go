package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	IsAdmin      bool   `json:"is_admin"`
	IsTeamLeader bool   `json:"is_team_leader"`
}
