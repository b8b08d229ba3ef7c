package models

import "time"

// UserAccount is the stored credential record. Email is the unique key;
// uniqueness is enforced by the document store's index, not by application
// locking.
type UserAccount struct {
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// SignupRequest is the body of POST /signup and POST /login.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the generic {message} envelope the account endpoints
// return on both success and failure.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on successful authentication. Token is the
// session indicator the front-end keeps.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
