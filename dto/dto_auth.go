package dto

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterReq struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required"`
}

type UpdateProfileReq struct {
	DisplayName string `json:"displayName" validate:"required"`
}

// TelegramAuthReq mirrors the payload the Telegram login widget hands to
// its auth callback.
type TelegramAuthReq struct {
	ID        int64  `json:"id" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
}

type SessionResp struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Admin       bool   `json:"admin"`
}

type UploadResp struct {
	URL string `json:"url" example:"/uploads/1700000000_cat.png"`
}
