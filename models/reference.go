package models

import "time"

// CustomWasher is a washer added by staff on top of the fixed list the
// frontend ships with.
type CustomWasher struct {
	ID        string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"nome" bson:"nome" gorm:"type:varchar(255);index;not null"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null"`
}

func (CustomWasher) TableName() string {
	return "lavadores"
}

// ExternalCompany is a client company outside the group.
type ExternalCompany struct {
	ID        string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"nome" bson:"nome" gorm:"type:varchar(255);index;not null"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"not null"`
}

func (ExternalCompany) TableName() string {
	return "empresas_externas"
}

// ReferenceInput is the create payload for both reference lists.
type ReferenceInput struct {
	Name string `json:"nome" binding:"required"`
}
