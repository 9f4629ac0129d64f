package marketplace

import "time"

// UserType distinguishes the two account roles. The role decides which
// dashboard data is fetched; the server decides what each role sees.
type UserType string

const (
	UserTypeClient   UserType = "client"
	UserTypeProvider UserType = "provider"
)

// Valid reports whether the value is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeProvider
}

// ServiceCategory identifies a bookable home service.
type ServiceCategory string

const (
	ServiceMenage          ServiceCategory = "menage"
	ServiceGardeEnfants    ServiceCategory = "garde_enfants"
	ServiceBricolage       ServiceCategory = "bricolage"
	ServiceJardinage       ServiceCategory = "jardinage"
	ServiceSoutienScolaire ServiceCategory = "soutien_scolaire"
	ServiceAideSeniors     ServiceCategory = "aide_seniors"
)

// ServiceCategories lists all known categories in display order.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		ServiceMenage,
		ServiceGardeEnfants,
		ServiceBricolage,
		ServiceJardinage,
		ServiceSoutienScolaire,
		ServiceAideSeniors,
	}
}

// Valid reports whether the value is one of the known categories.
func (c ServiceCategory) Valid() bool {
	for _, known := range ServiceCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// Valid reports whether the value is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// UserProfile is the server-owned account record. It is fetched on session
// establishment and replaced wholesale on refresh, never partially mutated
// by this client.
type UserProfile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	UserType     UserType  `json:"user_type"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	IsVerified   bool      `json:"is_verified"`
}

// ProviderProfile describes a provider's service offering.
type ProviderProfile struct {
	ID              string                      `json:"id"`
	UserID          string                      `json:"user_id"`
	Services        []ServiceCategory           `json:"services"`
	HourlyRate      map[ServiceCategory]float64 `json:"hourly_rate"`
	ExperienceYears int                         `json:"experience_years"`
	Description     string                      `json:"description"`
	Availability    map[string][]string         `json:"availability"`
	Rating          float64                     `json:"rating"`
	TotalReviews    int                         `json:"total_reviews"`
	IsVerified      bool                        `json:"is_verified"`
	CreatedAt       time.Time                   `json:"created_at"`
}

// ProviderListing is one entry of the public provider directory: the
// provider's offering plus the subset of account data the server exposes.
type ProviderListing struct {
	ProviderProfile ProviderProfile `json:"provider_profile"`
	UserInfo        ProviderInfo    `json:"user_info"`
}

// ProviderInfo is the public slice of a provider's account.
type ProviderInfo struct {
	FullName     string `json:"full_name"`
	City         string `json:"city"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Booking is a read-only display entity on this side; all mutations go
// through the API and the server recomputes derived fields.
type Booking struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	ProviderID      string          `json:"provider_id"`
	ServiceCategory ServiceCategory `json:"service_category"`
	ScheduledDate   time.Time       `json:"scheduled_date"`
	DurationHours   int             `json:"duration_hours"`
	Address         string          `json:"address"`
	Notes           string          `json:"notes,omitempty"`
	Status          BookingStatus   `json:"status"`
	TotalPrice      float64         `json:"total_price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
