package dto

import "ewm_backend/internals/features/categories/model"

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToCategoryResponse(c model.CategoryModel) CategoryResponse {
	return CategoryResponse{ID: c.CategoryID, Name: c.CategoryName}
}

func ToCategoryResponseList(categories []model.CategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
