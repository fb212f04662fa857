package services

import (
	"time"

	"github.com/minseok/enigma/internal/server/models"
)

// View types are what services hand to the boundary layer; they never carry
// password hashes or other storage-only fields.

type UserView struct {
	ID          string    `json:"id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	SchoolLevel string    `json:"school_level"`
	Grade       int       `json:"grade"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PostView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorName   string    `json:"author_name"`
	CategoryName string    `json:"category_name"`
	ViewCount    int       `json:"view_count"`
	Status       string    `json:"status"`
	SchoolLevel  string    `json:"school_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CommentView struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post_id"`
	UserName    string    `json:"user_name"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	SchoolLevel string    `json:"school_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryView struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toUserView(u *models.User) *UserView {
	return &UserView{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		SchoolLevel: u.SchoolLevel.String(),
		Grade:       u.Grade,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toCategoryView(c *models.Category) *CategoryView {
	return &CategoryView{ID: c.ID, Code: c.Code, Name: c.Name, Description: c.Description}
}

func toPostView(p *models.Post, authorName, categoryName string) *PostView {
	return &PostView{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		AuthorName:   authorName,
		CategoryName: categoryName,
		ViewCount:    p.ViewCount,
		Status:       p.Status.String(),
		SchoolLevel:  p.SchoolLevel.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toCommentView(c *models.Comment, userName string) *CommentView {
	return &CommentView{
		ID:          c.ID,
		PostID:      c.PostID,
		UserName:    userName,
		Content:     c.Content,
		Status:      c.Status.String(),
		SchoolLevel: c.SchoolLevel.String(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
