package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name"          json:"name"`
	Email             string             `bson:"email"         json:"email"`
	PasswordHash      string             `bson:"password"      json:"-"`
	Verified          bool               `bson:"isVerified"    json:"isVerified"`
	VerificationToken string             `bson:"verificationToken,omitempty" json:"-"`
	ResetToken        string             `bson:"resetToken,omitempty"        json:"-"`
	ResetTokenExpiry  *time.Time         `bson:"resetTokenExpiry,omitempty"  json:"-"`
	CreatedAt         time.Time          `bson:"createdAt"     json:"created_at"`
}

// PublicUser is the projection returned to clients. The password hash and
// any pending tokens never leave the store boundary.
type PublicUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"isVerified"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Name: u.Name, Email: u.Email, Verified: u.Verified}
}
