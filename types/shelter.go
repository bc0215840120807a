package types

import "time"

type AllocationRequest struct {
	FamilySize   int     `json:"family_size" binding:"required,min=1"`
	HasElderly   bool    `json:"has_elderly"`
	HasChildren  bool    `json:"has_children"`
	MedicalNeeds bool    `json:"medical_needs"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type Allocation struct {
	AllocationID string    `firestore:"-" json:"allocation_id"`
	ShelterID    string    `firestore:"shelterId" json:"shelter_id"`
	ShelterName  string    `firestore:"shelterName" json:"shelter_name"`
	FamilySize   int       `firestore:"familySize" json:"family_size"`
	Score        float64   `firestore:"score" json:"score"`
	Status       string    `firestore:"status" json:"status"`
	CreatedAt    time.Time `firestore:"createdAt" json:"created_at"`
}

type ShelterStats struct {
	TotalAllocations int     `json:"total_allocations"`
	PeoplePlaced     int     `json:"people_placed"`
	AvgScore         float64 `json:"avg_score"`
}
