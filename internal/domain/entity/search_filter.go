package entity

// DoctorSearchFilter is a domain-level filter for the public doctor search.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorSearchFilter struct {
	Query        string // Free text, matched against search tag content (ILIKE)
	SpecialtyID  uint   // 0 means any specialty
	CityID       uint   // 0 means any city
	VerifiedOnly bool
	OnlineOnly   bool
}
