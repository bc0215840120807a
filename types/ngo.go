package types

import "time"

type OperationStatus string

const (
	OperationPlanned   OperationStatus = "planned"
	OperationActive    OperationStatus = "active"
	OperationCompleted OperationStatus = "completed"
	OperationCancelled OperationStatus = "cancelled"
)

type Operation struct {
	ID        string          `firestore:"-" json:"id"`
	NGOID     string          `firestore:"ngoId" json:"ngo_id"`
	Title     string          `firestore:"title" json:"title"`
	Status    OperationStatus `firestore:"status" json:"status"`
	Progress  int             `firestore:"progress" json:"progress"` // 0-100
	CreatedAt time.Time       `firestore:"createdAt" json:"created_at"`
	UpdatedAt time.Time       `firestore:"updatedAt" json:"updated_at"`
}

type Volunteer struct {
	ID       string    `firestore:"-" json:"id"`
	NGOID    string    `firestore:"ngoId" json:"ngo_id"`
	Name     string    `firestore:"name" json:"name"`
	Skills   []string  `firestore:"skills" json:"skills"`
	Status   string    `firestore:"status" json:"status"`
	JoinedAt time.Time `firestore:"joinedAt" json:"joined_at"`
}
