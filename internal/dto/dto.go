// Package dto содержит транспортные структуры REST API.
package dto

type Address struct {
	Text string  `json:"text"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type Order struct {
	ID                  string  `json:"id"`
	ClientID            int64   `json:"client_id"`
	Pickup              Address `json:"pickup"`
	Dropoff             Address `json:"dropoff"`
	PackageSize         string  `json:"package_size"`
	Weight              float64 `json:"weight"`
	Urgency             string  `json:"urgency"`
	ScheduledDate       string  `json:"scheduled_date,omitempty"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
	Insurance           bool    `json:"insurance"`
	Amount              float64 `json:"amount"`
	Distance            float64 `json:"distance"`
	EstimatedTime       string  `json:"estimated_time,omitempty"`
	CourierID           int64   `json:"courier_id"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int64   `json:"page"`
	Limit  int64   `json:"limit"`
}

type Courier struct {
	ID             int64   `json:"id"`
	UserID         *int64  `json:"user_id,omitempty"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address,omitempty"`
	Experience     string  `json:"experience,omitempty"`
	Transport      string  `json:"transport"`
	Available      bool    `json:"available"`
	Motivation     string  `json:"motivation,omitempty"`
	IDDocument     string  `json:"id_document,omitempty"`
	DrivingLicense string  `json:"driving_license,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	Status         string  `json:"status,omitempty"`
	DeliveryCount  int64   `json:"delivery_count"`
	Rating         float64 `json:"rating"`
	CreatedAt      string  `json:"created_at"`
}

type CourierPublic struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	Transport      string  `json:"transport"`
	Rating         float64 `json:"rating"`
	DeliveryCount  int64   `json:"delivery_count"`
}

type Feedback struct {
	ID        int64  `json:"id"`
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
	ClientID  int64  `json:"client_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}

type Notification struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Payload   map[string]string `json:"payload,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt string            `json:"created_at"`
}

type NotificationDelivery struct {
	Delivered bool   `json:"delivered"`
	Reason    string `json:"reason,omitempty"`
}

type User struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	FullName      string `json:"full_name"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
	CreatedAt     string `json:"created_at"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Settings struct {
	BasePrice             float64  `json:"base_price"`
	PricePerKm            float64  `json:"price_per_km"`
	ExpressMultiplier     float64  `json:"express_multiplier"`
	UrgentMultiplier      float64  `json:"urgent_multiplier"`
	LargePackageSurcharge float64  `json:"large_package_surcharge"`
	DeliveryZones         []string `json:"delivery_zones"`
	VehicleTypes          []string `json:"vehicle_types"`
	CompanyName           string   `json:"company_name"`
	CompanyEmail          string   `json:"company_email"`
	CompanyPhone          string   `json:"company_phone"`
	CompanyAddress        string   `json:"company_address"`
	UpdatedAt             string   `json:"updated_at"`
}

type FileRef struct {
	URL       string `json:"url"`
	StorageID string `json:"storage_id"`
}
