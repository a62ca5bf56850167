package dto

import "ewm_backend/internals/features/users/model"

type NewUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=250"`
	Email string `json:"email" validate:"required,email,max=254"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserResponse(u model.UserModel) UserResponse {
	return UserResponse{
		ID:    u.UserID,
		Name:  u.UserName,
		Email: u.UserEmail,
	}
}

func ToUserResponseList(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
