package domain

import "errors"

var (
	MessageSuccessGetCategories  = "success get categories"
	MessageSuccessGetCategory    = "success get category detail"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedGetCategory    = "failed to get category detail"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoriesNotFound = errors.New("categories not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrEmptyCategoryName  = errors.New("category name must not be empty")
)

type (
	CategoryRequest struct {
		Name string `json:"name" validate:"required,min=3,max=50"`
	}

	Category struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
