package payload

// UpdateProfileRequest changes only the fields that are present.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	Phone    *string `json:"phone"    validate:"omitempty,phone"`
	Sex      *string `json:"sex"      validate:"omitempty,oneof=male female other"`
	DOB      *string `json:"dob"      validate:"omitempty,pastdate"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"     validate:"required,passwordlen,password"`
}

// UpdateAvatarRequest carries a data URI or a remote image URL.
type UpdateAvatarRequest struct {
	Image string `json:"image" validate:"required,imagesource"`
}
