package dto

type ThemeCreateDTO struct {
	Name       string `json:"name" binding:"required"`
	Text       string `json:"text"`
	IsHomework bool   `json:"is_homework"`
}

type ThemeUpdateDTO struct {
	Name       *string `json:"name"`
	Text       *string `json:"text"`
	IsHomework *bool   `json:"is_homework"`
}

type ThemeDTO struct {
	ID         uint   `json:"id"`
	CourseID   uint   `json:"course_id"`
	Name       string `json:"name"`
	Text       string `json:"text"`
	IsHomework bool   `json:"is_homework"`
}
