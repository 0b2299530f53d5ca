package models

// NewsSource is the publisher of an article.
type NewsSource struct {
	ID   *string `json:"id,omitempty"`
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}

// Article mirrors a single GNews article.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	URL         string     `json:"url"`
	Image       *string    `json:"image,omitempty"`
	PublishedAt string     `json:"publishedAt"`
	Lang        string     `json:"lang"`
	Source      NewsSource `json:"source"`
}
