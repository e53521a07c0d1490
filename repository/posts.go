package repository

import (
	"context"
	"slices"

	"cash-track/database"
	"cash-track/models"
)

// BoardOwner is the store owner under which the shared post board is
// kept. Posts are not scoped to a user.
const BoardOwner = "_board"

// Posts returns the board in creation order.
func (r *Repository) Posts(ctx context.Context) []models.Post {
	posts := readAll[models.Post](ctx, r, BoardOwner, database.Posts)
	byID := compareIDs(postPrefix)
	slices.SortFunc(posts, func(a, b models.Post) int { return byID(a.ID, b.ID) })
	return posts
}

func (r *Repository) AddPost(ctx context.Context, in models.NewPost) (models.Post, error) {
	if err := in.Validate(); err != nil {
		return models.Post{}, invalid(err)
	}
	id, err := r.nextID(ctx, BoardOwner, database.Posts, postPrefix)
	if err != nil {
		return models.Post{}, err
	}
	p := models.Post{ID: id, Title: in.Title, Content: in.Content, CreatedAt: r.timestamp()}
	if err := r.write(ctx, BoardOwner, database.Posts, p.ID, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

func (r *Repository) DeletePost(ctx context.Context, id string) (bool, error) {
	return r.remove(ctx, BoardOwner, database.Posts, id)
}
