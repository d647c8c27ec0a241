package entity

import "time"

// Amenity is a tri-state flag for cafe facilities. Submitters may leave a
// flag unanswered, which is distinct from answering "no".
type Amenity int16

const (
	AmenityUnknown Amenity = iota
	AmenityNo
	AmenityYes
)

func (a Amenity) String() string {
	switch a {
	case AmenityNo:
		return "no"
	case AmenityYes:
		return "yes"
	default:
		return "unknown"
	}
}

// ParseAmenity maps form input to an Amenity. Empty input means the
// submitter skipped the question.
func ParseAmenity(v string) Amenity {
	switch v {
	case "1", "yes", "true":
		return AmenityYes
	case "0", "no", "false":
		return AmenityNo
	default:
		return AmenityUnknown
	}
}

// Cafe is a user-submitted cafe entry. The creator becomes the owner;
// only the admin may delete it. There is no update operation.
type Cafe struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Address      string    `json:"address"`
	HasSockets   Amenity   `json:"has_sockets"`
	HasToilet    Amenity   `json:"has_toilet"`
	HasWiFi      Amenity   `json:"has_wifi"`
	CanTakeCalls Amenity   `json:"can_take_calls"`
	Seats        string    `json:"seats"`
	CoffeePrice  string    `json:"coffee_price"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"img_url"`
	OwnerID      int64     `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}
