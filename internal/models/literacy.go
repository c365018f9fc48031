package models

import "time"

// Типы обучающих материалов.
const (
	ResourceArticle = "article"
	ResourceVideo   = "video"
	ResourceCourse  = "course"
)

// LiteracyResource представляет обучающий материал по финансовой грамотности.
// У материалов из сидера CreatedBy пустой.
type LiteracyResource struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ResourceType string    `json:"resourceType"`
	URL          string    `json:"url"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnerID возвращает идентификатор автора материала.
func (l *LiteracyResource) OwnerID() string {
	return l.CreatedBy
}

// LiteracyResourceInput используется для приёма материала из JSON-запроса.
// Пустой ResourceType означает article.
type LiteracyResourceInput struct {
	Title        string `json:"title" validate:"required,max=300"`
	Description  string `json:"description" validate:"required,max=5000"`
	ResourceType string `json:"resourceType" validate:"omitempty,oneof=article video course"`
	URL          string `json:"url" validate:"omitempty,url"`
}
