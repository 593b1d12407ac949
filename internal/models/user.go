package models

// User is a registered credential. Phone is unique.
type User struct {
	Phone        string `bson:"phone" json:"phone"`
	PasswordHash string `bson:"password" json:"-"` // never serialized
	Role         string `bson:"role" json:"role"`  // free-form, e.g. "admin", "user"
}
