package employee

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Department   string `json:"department" binding:"required"`
	Role         string `json:"role"`
	IsAdmin      bool   `json:"is_admin"`
	IsTeamLeader bool   `json:"is_team_leader"`
}

type UpdateEmployeeRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Department   string  `json:"department" binding:"required"`
	Role         string  `json:"role"`
	IsAdmin      bool    `json:"is_admin"`
	IsTeamLeader bool    `json:"is_team_leader"`
	Status       string  `json:"status" binding:"required,oneof=Active Inactive"`
	AvatarURL    *string `json:"avatar_url"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	IsAdmin      bool    `json:"is_admin"`
	IsTeamLeader bool    `json:"is_team_leader"`
	Status       string  `json:"status"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type EmployeeOption struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
