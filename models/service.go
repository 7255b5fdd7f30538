package models

// Service represents a provider's marketplace listing.
type Service struct {
	ID               string        `bson:"id" json:"id"`
	ProviderID       string        `bson:"provider_id" json:"providerId"`
	Name             string        `bson:"name" json:"name"`
	Category         string        `bson:"category" json:"category"`       // e.g. "Musica", "Catering", "Venue"
	Subcategory      string        `bson:"subcategory" json:"subcategory"` // e.g. "DJ", "Banda ao Vivo"
	Description      string        `bson:"description" json:"description"`
	Price            float64       `bson:"price" json:"price"`
	PriceUnit        string        `bson:"price_unit" json:"priceUnit"` // "hora", "evento", "pessoa", "dia", "unidade"
	Location         string        `bson:"location" json:"location"`
	Rating           float64       `bson:"rating" json:"rating"`
	Reviews          int           `bson:"reviews" json:"reviews"`
	Images           []string      `bson:"images,omitempty" json:"images,omitempty"`
	Features         []string      `bson:"features,omitempty" json:"features,omitempty"`
	UnavailableDates []string      `bson:"unavailable_dates,omitempty" json:"unavailableDates,omitempty"` // "YYYY-MM-DD", fully blocked days
	Status           string        `bson:"status" json:"status"`                                          // moderation: "approved", "pending", "rejected"
	BookingType      BookingType   `bson:"booking_type" json:"bookingType"`
	BusinessHours    BusinessHours `bson:"business_hours,omitzero" json:"businessHours,omitzero"`
}

// Moderation states for a service listing.
const (
	ServiceApproved = "approved"
	ServicePending  = "pending"
	ServiceRejected = "rejected"
)
