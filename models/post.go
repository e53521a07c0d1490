package models

import "time"

// Post is an entry of the shared post board.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type NewPost struct {
	Title   string
	Content string
}

func (n NewPost) Validate() error {
	if err := requireText("title", n.Title); err != nil {
		return err
	}
	return requireText("content", n.Content)
}
