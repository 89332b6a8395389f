package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Content   string             `bson:"content" json:"content"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Blog keeps likes as a plain counter.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Category  string             `bson:"category" json:"category"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	Likes     int64              `bson:"likes" json:"likes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateBlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author" binding:"required,objectid"`
	Category string `json:"category"`
}

type UpdateBlogRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type CommentRequest struct {
	User    string `json:"user" binding:"required,objectid"`
	Content string `json:"content" binding:"required"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentCount struct {
	CommentCount int `json:"commentCount"`
}
