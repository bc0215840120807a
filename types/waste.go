package types

import "time"

type InventoryStatus string

const (
	InventoryAvailable InventoryStatus = "available"
	InventoryReserved  InventoryStatus = "reserved"
	InventoryExpired   InventoryStatus = "expired"
)

type InventoryItem struct {
	ItemID      string          `firestore:"-" json:"item_id"`
	WarehouseID string          `firestore:"warehouseId" json:"warehouse_id"`
	FoodType    string          `firestore:"foodType" json:"food_type"`
	QuantityKG  float64         `firestore:"quantityKg" json:"quantity_kg"`
	ExpiryDate  time.Time       `firestore:"expiryDate" json:"expiry_date"`
	Status      InventoryStatus `firestore:"status" json:"status"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"created_at"`
}

type DemandUrgency string

const (
	DemandLow      DemandUrgency = "low"
	DemandMedium   DemandUrgency = "medium"
	DemandHigh     DemandUrgency = "high"
	DemandCritical DemandUrgency = "critical"
)

type DemandRecord struct {
	DemandID    string        `firestore:"-" json:"demand_id"`
	Region      string        `firestore:"region" json:"region"`
	Latitude    float64       `firestore:"latitude" json:"latitude"`
	Longitude   float64       `firestore:"longitude" json:"longitude"`
	RequestedKG float64       `firestore:"requestedKg" json:"requested_kg"`
	FulfilledKG float64       `firestore:"fulfilledKg" json:"fulfilled_kg"`
	Urgency     DemandUrgency `firestore:"urgency" json:"urgency"`
	Open        bool          `firestore:"open" json:"open"`
	CreatedAt   time.Time     `firestore:"createdAt" json:"created_at"`
}

type LogisticsPartner struct {
	PartnerID   string  `firestore:"-" json:"partner_id"`
	Name        string  `firestore:"name" json:"name"`
	VehicleType string  `firestore:"vehicleType" json:"vehicle_type"`
	CapacityKG  float64 `firestore:"capacityKg" json:"capacity_kg"`
	Phone       string  `firestore:"phone" json:"phone"`
	Active      bool    `firestore:"active" json:"active"`
}

type StorageSite struct {
	SiteID     string  `firestore:"-" json:"site_id"`
	Name       string  `firestore:"name" json:"name"`
	Address    string  `firestore:"address" json:"address"`
	Latitude   float64 `firestore:"latitude" json:"latitude"`
	Longitude  float64 `firestore:"longitude" json:"longitude"`
	CapacityKG float64 `firestore:"capacityKg" json:"capacity_kg"`
	UsedKG     float64 `firestore:"usedKg" json:"used_kg"`
	ColdChain  bool    `firestore:"coldChain" json:"cold_chain"`
}

type Farmer struct {
	FarmerID  string   `firestore:"-" json:"farmer_id"`
	UserID    string   `firestore:"userId" json:"user_id"`
	FarmName  string   `firestore:"farmName" json:"farm_name"`
	Address   string   `firestore:"address" json:"address"`
	Latitude  float64  `firestore:"latitude" json:"latitude"`
	Longitude float64  `firestore:"longitude" json:"longitude"`
	Produce   []string `firestore:"produce" json:"produce"`
	Phone     string   `firestore:"phone" json:"phone"`
}

type WasteStats struct {
	TotalStockKG    float64 `json:"total_stock_kg"`
	ExpiringSoon    int     `json:"expiring_soon"`
	OpenDemandKG    float64 `json:"open_demand_kg"`
	OpenDemands     int     `json:"open_demands"`
	ActivePartners  int     `json:"active_partners"`
	RegisteredFarms int     `json:"registered_farms"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// PlanLeg is a single inventory-to-demand assignment in a redistribution
// plan, nearest warehouse first.
type PlanLeg struct {
	ItemID      string  `json:"item_id"`
	WarehouseID string  `json:"warehouse_id"`
	DemandID    string  `json:"demand_id"`
	Region      string  `json:"region"`
	QuantityKG  float64 `json:"quantity_kg"`
	DistanceKM  float64 `json:"distance_km"`
}

type RedistributionPlan struct {
	PlanID      string            `json:"plan_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Legs        []PlanLeg         `json:"legs"`
	TotalKG     float64           `json:"total_kg"`
	Briefings   map[string]string `json:"briefings"` // warehouse_id -> text
}
