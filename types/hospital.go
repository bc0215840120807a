package types

import "time"

// Occupancy severity bands.
type OccupancyBand string

const (
	BandNormal   OccupancyBand = "normal"
	BandWarning  OccupancyBand = "warning"
	BandCritical OccupancyBand = "critical"
)

type Hospital struct {
	HospitalID        string    `firestore:"-" json:"hospital_id"`
	Name              string    `firestore:"name" json:"name"`
	Address           string    `firestore:"address" json:"address"`
	TotalBeds         int       `firestore:"totalBeds" json:"total_beds"`
	ICUBeds           int       `firestore:"icuBeds" json:"icu_beds"`
	AvailableBeds     int       `firestore:"availableBeds" json:"available_beds"`
	AvailableICUBeds  int       `firestore:"availableIcuBeds" json:"available_icu_beds"`
	Latitude          float64   `firestore:"latitude" json:"latitude"`
	Longitude         float64   `firestore:"longitude" json:"longitude"`
	Specialties       []string  `firestore:"specialties" json:"specialties"`
	AdminID           string    `firestore:"adminId" json:"admin_id"`
	CreatedAt         time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt         time.Time `firestore:"updatedAt" json:"updated_at"`
}

// OccupancyRate returns the percentage of beds in use. Zero capacity
// reports as fully occupied so dashboards treat it as critical.
func (h Hospital) OccupancyRate() float64 {
	if h.TotalBeds == 0 {
		return 100
	}
	return float64(h.TotalBeds-h.AvailableBeds) / float64(h.TotalBeds) * 100
}

// OccupancyBandFor maps an occupancy percentage to its severity band.
func OccupancyBandFor(rate float64) OccupancyBand {
	switch {
	case rate >= 90:
		return BandCritical
	case rate >= 70:
		return BandWarning
	default:
		return BandNormal
	}
}

type DoctorStatus string

const (
	DoctorOnDuty  DoctorStatus = "on_duty"
	DoctorOffDuty DoctorStatus = "off_duty"
	DoctorOnLeave DoctorStatus = "on_leave"
)

type Doctor struct {
	DoctorID        string       `firestore:"-" json:"doctor_id"`
	Name            string       `firestore:"name" json:"name"`
	Specialization  string       `firestore:"specialization" json:"specialization"`
	AvailableHours  string       `firestore:"availableHours" json:"available_hours"`
	HospitalID      string       `firestore:"hospitalId" json:"hospital_id"`
	ExperienceYears int          `firestore:"experienceYears" json:"experience_years"`
	Status          DoctorStatus `firestore:"status" json:"status"`
}

// Patient records are read-only in this service; they are written by the
// hospital intake systems directly.
type Patient struct {
	PatientID  string    `firestore:"-" json:"patient_id"`
	Name       string    `firestore:"name" json:"name"`
	Age        int       `firestore:"age" json:"age"`
	Condition  string    `firestore:"condition" json:"condition"`
	HospitalID string    `firestore:"hospitalId" json:"hospital_id"`
	AdmittedAt time.Time `firestore:"admittedAt" json:"admitted_at"`
}

// HospitalWithDistance is a finder result row, ascending by distance.
type HospitalWithDistance struct {
	Hospital
	DistanceKM float64       `json:"distance_km"`
	Occupancy  float64       `json:"occupancy"`
	Band       OccupancyBand `json:"band"`
}

// FinderRequest bounds coordinates by range rather than requiring them, so
// a legitimate 0 (equator, prime meridian) binds.
type FinderRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Specialty string  `json:"specialty"`
	NeedsICU  bool    `json:"needs_icu"`
	RadiusKM  float64 `json:"radius_km"`
}

type HospitalStats struct {
	TotalHospitals   int     `json:"total_hospitals"`
	TotalBeds        int     `json:"total_beds"`
	AvailableBeds    int     `json:"available_beds"`
	TotalICUBeds     int     `json:"total_icu_beds"`
	AvailableICUBeds int     `json:"available_icu_beds"`
	AvgOccupancy     float64 `json:"avg_occupancy"`
	CriticalCount    int     `json:"critical_count"`
	WarningCount     int     `json:"warning_count"`
	NormalCount      int     `json:"normal_count"`
	DoctorsOnDuty    int     `json:"doctors_on_duty"`
}
