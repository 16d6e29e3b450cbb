package requests

type CreateCase struct {
	Firstname         string `json:"firstname" validate:"required"`
	Lastname          string `json:"lastname" validate:"required"`
	Age               int    `json:"age" validate:"required,gt=0"`
	Gender            string `json:"gender" validate:"required,oneof=male female other"`
	Duration          string `json:"duration" validate:"required"`
	SiteOfInfection   string `json:"siteOfInfection" validate:"required"`
	PreviousTreatment string `json:"previousTreatment" validate:"required"`
}
