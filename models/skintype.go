package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SkinType classifies users and products. MinPoints/MaxPoints define the
// inclusive quiz score range that maps to this classification, so the
// quiz assignment stays data-driven.
type SkinType struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	MinPoints   int                  `bson:"minPoints" json:"minPoints"`
	MaxPoints   int                  `bson:"maxPoints" json:"maxPoints"`
	Routines    []primitive.ObjectID `bson:"routineIds,omitempty" json:"routineIds,omitempty"`
}

type CreateSkinTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MinPoints   int    `json:"minPoints"`
	MaxPoints   int    `json:"maxPoints"`
}

type UpdateSkinTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MinPoints   *int    `json:"minPoints"`
	MaxPoints   *int    `json:"maxPoints"`
}

// QuizSubmission is the quiz answer payload; points are the raw answer
// values summed for classification.
type QuizSubmission struct {
	Points  []int  `json:"points" binding:"required,min=1"`
	Content string `json:"content"`
}
