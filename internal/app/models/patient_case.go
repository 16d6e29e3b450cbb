package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CaseStatus string

const (
	CaseStatusPending CaseStatus = "pending"
	CaseStatusDone    CaseStatus = "done"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusPending, CaseStatusDone:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// PatientCase is a single referral record. The owning doctor never changes
// after creation; status only moves pending -> done, and only as a side
// effect of report generation.
type PatientCase struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Doctor primitive.ObjectID `json:"doctor" bson:"doctor"`

	Firstname         string `json:"firstname" bson:"firstname"`
	Lastname          string `json:"lastname" bson:"lastname"`
	Age               int    `json:"age" bson:"age"`
	Gender            string `json:"gender" bson:"gender"`
	Duration          string `json:"duration" bson:"duration"`
	SiteOfInfection   string `json:"siteOfInfection" bson:"siteOfInfection"`
	PreviousTreatment string `json:"previousTreatment" bson:"previousTreatment"`

	NakedEyePhoto   string `json:"nakedEyePhoto" bson:"nakedEyePhoto"`
	DermoscopePhoto string `json:"dermoscopePhoto" bson:"dermoscopePhoto"`

	Status CaseStatus `json:"status" bson:"status"`

	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	PaymentID     string        `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	AmountPaid    int64         `json:"amountPaid" bson:"amountPaid"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`

	TimeModel `bson:",inline"`
}
