package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account that can log into the system. BusinessID is nil
// until the user creates a business and is set exactly once.
type User struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Fname      string              `bson:"fname" json:"fname"`
	Lname      string              `bson:"lname" json:"lname"`
	Email      string              `bson:"email" json:"email"`
	Password   string              `bson:"password" json:"-"` // bcrypt hash, hidden from JSON
	BusinessID *primitive.ObjectID `bson:"businessId" json:"businessId,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// FormattedUser is the public shape returned by /user/name.
type FormattedUser struct {
	Fname string `json:"fname"`
	Lname string `json:"lname"`
}

func (u *User) ToFormatted() FormattedUser {
	return FormattedUser{Fname: u.Fname, Lname: u.Lname}
}
