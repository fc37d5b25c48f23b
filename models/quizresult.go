package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizResult is an append-only record of one quiz submission and the skin
// type it resolved to.
type QuizResult struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Content   string             `bson:"content,omitempty" json:"content,omitempty"`
	Result    primitive.ObjectID `bson:"result" json:"result"`
	Points    []int              `bson:"points" json:"points"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
