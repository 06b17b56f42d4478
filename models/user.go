package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account of the platform.
// Credential fields (Password, Salt) never leave the server: they are
// excluded from JSON and only travel between the service and store layers.
type User struct {
	// ID is the document identifier generated client-side on registration.
	ID primitive.ObjectID `bson:"_id" json:"id"`

	// Login is the unique, immutable sign-in name.
	Login string `bson:"login" json:"login"`

	// Nickname is the public display name. Defaults to a timestamp-derived
	// placeholder when the user does not provide one.
	Nickname string `bson:"nickname" json:"nickname"`

	// ImageURL points to the profile picture, if any.
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`

	// Password is the derived password hash, never plaintext.
	Password string `bson:"password" json:"-"`

	// Salt is the per-user random salt used to derive Password.
	Salt string `bson:"salt" json:"-"`
}

// Creator is the public-safe projection of a [User].
type Creator struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Nickname string             `bson:"nickname" json:"nickname"`
	ImageURL string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// Creator projects the user to its public shape.
func (u User) Creator() Creator {
	return Creator{
		ID:       u.ID,
		Nickname: u.Nickname,
		ImageURL: u.ImageURL,
	}
}

// TableName returns the name of the collection/table holding users.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of register and login requests.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

// ProfileUpdate carries the mutable public profile fields.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Nickname *string `json:"nickname,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Nickname == nil && p.ImageURL == nil
}
