package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Profile struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Address   string `bson:"address" json:"address"`
}

type Activity struct {
	Action    string    `bson:"action" json:"action"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// User stores a bcrypt hash in Password; it is never written to JSON.
type User struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username    string               `bson:"username" json:"username"`
	Email       string               `bson:"email" json:"email"`
	Password    string               `bson:"password" json:"-"`
	Profile     Profile              `bson:"profile" json:"profile"`
	ActivityLog []Activity           `bson:"activityLog" json:"activityLog"`
	Favorites   []primitive.ObjectID `bson:"favorites" json:"favorites"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Profile  *Profile `json:"profile"`
}

type UpdateUserRequest struct {
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Profile  *Profile `json:"profile"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}
