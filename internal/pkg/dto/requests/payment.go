package requests

type CreatePayment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
}

type VerifyPayment struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
}

// GatewayOrder is the outbound order-creation payload for the gateway
// REST API. Amount is in the smallest currency unit.
type GatewayOrder struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
