package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type ReportStatus string

const (
	ReportStatusCompleted ReportStatus = "completed"
)

// Report is created exactly once per case and is immutable afterwards.
type Report struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Doctor  primitive.ObjectID `json:"doctor" bson:"doctor"`
	Patient primitive.ObjectID `json:"patient" bson:"patient"`

	DermoscopeFindings string `json:"dermoscopeFindings" bson:"dermoscopeFindings"`
	ClinicalImpression string `json:"clinicalImpression" bson:"clinicalImpression"`

	EditedNakedEyePhoto   string `json:"editedNakedEyePhoto" bson:"editedNakedEyePhoto"`
	EditedDermoscopePhoto string `json:"editedDermoscopePhoto" bson:"editedDermoscopePhoto"`

	DigitalSignature string `json:"digitalSignature,omitempty" bson:"digitalSignature,omitempty"`

	ReportStatus ReportStatus `json:"reportStatus" bson:"reportStatus"`

	TimeModel `bson:",inline"`
}
