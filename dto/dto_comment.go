package dto

type CreateCommentReq struct {
	Author string `json:"author" validate:"required,min=1,max=100"`
	Text   string `json:"text" validate:"required,min=1,max=2000"`
}

type CreateReviewReq struct {
	Text   string `json:"text" validate:"required,min=1,max=2000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}
