package dto

// AdminLoginRequest holds the shared admin credentials
type AdminLoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// StudentRegisterRequest creates a student account
type StudentRegisterRequest struct {
	Name     string `form:"name" json:"name"`
	RollNo   string `form:"rollNo" json:"rollNo"`
	Password string `form:"password" json:"password"`
}

// StudentLoginRequest authenticates a student by roll number
type StudentLoginRequest struct {
	RollNo   string `form:"rollNo" json:"rollNo"`
	Password string `form:"password" json:"password"`
}

// IdentityResponse describes who the current request belongs to
type IdentityResponse struct {
	IsAdmin bool             `json:"isAdmin"`
	Student *StudentResponse `json:"student,omitempty"`
}

// StudentResponse is the public view of a student
type StudentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RollNo string `json:"rollNo"`
}
