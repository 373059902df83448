package dto

// CreateProfileRequest creates a profile; life_expectancy defaults to the configured value
type CreateProfileRequest struct {
	Age            *int `json:"age" binding:"required,min=0"`
	LifeExpectancy *int `json:"life_expectancy" binding:"omitempty,min=0"`
}

// ProfileResponse is the public view of a profile
type ProfileResponse struct {
	ID             uint `json:"id"`
	Age            int  `json:"age"`
	LifeExpectancy int  `json:"life_expectancy"`
}

// AdminProfileResponse adds bookkeeping fields for the admin listing
type AdminProfileResponse struct {
	ID             uint   `json:"id"`
	Age            int    `json:"age"`
	LifeExpectancy int    `json:"life_expectancy"`
	CreatedAt      string `json:"created_at"`
}
