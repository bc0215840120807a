package types

import "time"

type Role string

const (
	RoleNormalUser    Role = "normal_user"
	RoleDoctor        Role = "doctor"
	RoleHospitalAdmin Role = "hospital_admin"
	RoleFarmer        Role = "farmer"
	RoleWarehouse     Role = "warehouse"
	RoleLogistics     Role = "logistics"
	RoleNGO           Role = "ngo"
	RoleAdmin         Role = "admin"
)

// User is the per-user document merged into Firestore on signup and on
// every role-profile update.
type User struct {
	UID          string    `firestore:"uid" json:"uid"`
	Email        string    `firestore:"email" json:"email"`
	DisplayName  string    `firestore:"displayName" json:"displayName"`
	Role         Role      `firestore:"role" json:"role"`
	RoleName     string    `firestore:"roleName" json:"roleName"`
	PasswordHash string    `firestore:"passwordHash" json:"-"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	LastLogin    time.Time `firestore:"lastLogin" json:"lastLogin"`
}

// RoleProfile holds the free-form role-specific fields (farmer, warehouse,
// logistics). No schema is enforced beyond the role itself.
type RoleProfile struct {
	Role   Role                   `json:"role" binding:"required"`
	Fields map[string]interface{} `json:"fields"`
}

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required"`
	Role        Role   `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}
