package requests

type SendOtp struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtp struct {
	Firstname         string `json:"firstname" validate:"required"`
	Lastname          string `json:"lastname" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required"`
	Password          string `json:"password" validate:"required,min=8"`
	Age               int    `json:"age" validate:"required,gt=0"`
	QualificationPic  string `json:"qualificationPic"`
	HowDoYouKnowAdmin string `json:"howDoYouKnowAdmin" validate:"required,oneof=Family Friend Colleague 'No Direct Connection'"`
	Otp               string `json:"otp" validate:"required,len=6,numeric"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePassword struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassword struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
