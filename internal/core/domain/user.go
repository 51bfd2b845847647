package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record in the users collection. Email is the lookup key
// for every read and upsert; the store does not enforce its uniqueness.
//
// The required markers on Name and Email are declarative only. Nothing in the
// request path runs them.
type User struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name,omitempty" bson:"name,omitempty" validate:"required"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty" validate:"required"`
	DisplayName string             `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhoneNumber string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Country     string             `json:"country,omitempty" bson:"country,omitempty"`
	Role        string             `json:"role,omitempty" bson:"role,omitempty"`
}

// IsEmpty reports whether the user carries no field an upsert would set.
func (u *User) IsEmpty() bool {
	return u.ID.IsZero() && u.Name == "" && u.Email == "" && u.DisplayName == "" &&
		u.PhoneNumber == "" && u.Country == "" && u.Role == ""
}

// ProfileUpdate carries the optional fields accepted by the profile endpoint.
type ProfileUpdate struct {
	DisplayName string
	PhoneNumber string
	Country     string
}

// Changes returns the document fields to set. Empty values are skipped, so a
// field can never be cleared through a profile update.
func (p ProfileUpdate) Changes() map[string]any {
	changes := make(map[string]any, 3)
	if p.DisplayName != "" {
		changes["displayName"] = p.DisplayName
	}
	if p.PhoneNumber != "" {
		changes["phoneNumber"] = p.PhoneNumber
	}
	if p.Country != "" {
		changes["country"] = p.Country
	}
	return changes
}
