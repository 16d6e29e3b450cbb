package responses

type UploadedImage struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type QualificationUpload struct {
	ImageURL    string `json:"imageUrl"`
	DoctorID    string `json:"doctorId"`
	LastUpdated string `json:"lastUpdated"`
}
