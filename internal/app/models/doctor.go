package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

type Doctor struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Firstname         string             `json:"firstname" bson:"firstname"`
	Lastname          string             `json:"lastname" bson:"lastname"`
	Email             string             `json:"email" bson:"email"`
	Phone             string             `json:"phone" bson:"phone"`
	Password          string             `json:"-" bson:"password"`
	Age               int                `json:"age" bson:"age"`
	QualificationPic  string             `json:"qualificationPic,omitempty" bson:"qualificationPic,omitempty"`
	Role              Role               `json:"role" bson:"role"`
	HowDoYouKnowAdmin string             `json:"howDoYouKnowAdmin" bson:"howDoYouKnowAdmin"`

	ResetToken           string     `json:"-" bson:"resetToken,omitempty"`
	ResetPasswordExpires *time.Time `json:"-" bson:"resetPasswordExpires,omitempty"`

	TimeModel `bson:",inline"`
}

// ConvertToBsonM builds the update document. Reset token fields are always
// included so clearing them persists.
func (d *Doctor) ConvertToBsonM() bson.M {
	return bson.M{
		"firstname":            d.Firstname,
		"lastname":             d.Lastname,
		"email":                d.Email,
		"phone":                d.Phone,
		"password":             d.Password,
		"age":                  d.Age,
		"qualificationPic":     d.QualificationPic,
		"role":                 d.Role,
		"howDoYouKnowAdmin":    d.HowDoYouKnowAdmin,
		"resetToken":           d.ResetToken,
		"resetPasswordExpires": d.ResetPasswordExpires,
		"updatedAt":            d.UpdatedAt,
	}
}
