package requests

type GenerateReport struct {
	DermoscopeFindings string `json:"dermoscopeFindings" validate:"required"`
	ClinicalImpression string `json:"clinicalImpression" validate:"required"`
	DigitalSignature   string `json:"digitalSignature"`

	// Optional label stamped onto both edited photos before upload.
	AnnotationLabel string `json:"annotationLabel"`
}
