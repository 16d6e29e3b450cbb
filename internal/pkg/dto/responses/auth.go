package responses

import "dermref-service/internal/app/models"

type Register struct {
	DoctorID string `json:"doctorId"`
}

type Login struct {
	Token  string         `json:"token"`
	Doctor *models.Doctor `json:"doctor"`
}
