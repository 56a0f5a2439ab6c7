package dto

// PostInput carries the full editor payload; the admin editor always
// submits every field, so create and update share the shape.
type PostInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Content     string   `json:"content" validate:"required"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

type CreatePostResp struct {
	ID string `json:"id" example:"68be742243c7f21d8421a0e7"`
}

type ToggleLikeResp struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// ErrorResponse is the uniform error body for the JSON API.
type ErrorResponse struct {
	Message string `json:"message" example:"invalid body"`
}
