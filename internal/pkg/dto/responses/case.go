package responses

import "dermref-service/internal/app/models"

// CaseDetails pairs a case with its report; Report stays nil until the
// case is done.
type CaseDetails struct {
	Patient *models.PatientCase `json:"patient"`
	Report  *models.Report      `json:"report"`
}
