package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" example:"alice"`
	Password     string `json:"password" example:"s3cret-pass"`
	ReferralCode string `json:"referral_code,omitempty" example:"K7QH2MZP4X"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
