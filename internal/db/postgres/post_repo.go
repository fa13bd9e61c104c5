package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"Snapfeed/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Description, post.Image, post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "posts_pkey") {
			return fmt.Errorf("post id already exists: %s", post.ID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a raw post row by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, author_id, title, description, image_url, created_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Description, &post.Image, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return &post, nil
}

// viewQuery joins the author's public profile fields and aggregates the
// like set onto each post row. Authors without a profile row project
// empty username/profile picture rather than dropping the post.
const viewQuery = `
	SELECT
		p.id, p.author_id, p.title, p.description, p.image_url, p.created_at,
		COALESCE(u.username, ''), COALESCE(u.profile_picture, ''),
		COALESCE(array_agg(l.user_id ORDER BY l.created_at) FILTER (WHERE l.user_id IS NOT NULL), '{}'),
		(SELECT COUNT(*) FROM post_comments c WHERE c.post_id = p.id)
	FROM posts p
	LEFT JOIN users u ON u.id = p.author_id
	LEFT JOIN post_likes l ON l.post_id = p.id
`

func scanView(scanner interface{ Scan(dest ...any) error }) (*posts.PostView, error) {
	var view posts.PostView
	var author posts.AuthorView
	var likes pq.StringArray

	err := scanner.Scan(
		&view.ID, &author.ID, &view.Title, &view.Description, &view.Image, &view.CreatedAt,
		&author.Username, &author.ProfilePicture,
		&likes,
		&view.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	view.Author = &author
	view.Likes = []string(likes)
	return &view, nil
}

// GetView retrieves a post with author projection, like set, and full
// ordered comments
func (r *postgresPostRepo) GetView(ctx context.Context, id string) (*posts.PostView, error) {
	query := viewQuery + `
		WHERE p.id = $1
		GROUP BY p.id, u.username, u.profile_picture
	`

	view, err := scanView(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	comments, err := r.listComments(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Comments = comments
	view.CommentCount = len(comments)

	return view, nil
}

// ListViews retrieves all posts ordered by created_at descending
func (r *postgresPostRepo) ListViews(ctx context.Context) ([]*posts.PostView, error) {
	query := viewQuery + `
		GROUP BY p.id, u.username, u.profile_picture
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	views := make([]*posts.PostView, 0)
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return views, nil
}

// Delete removes a post row; like and comment rows cascade
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// ToggleLike atomically flips the (post, user) like row inside one
// transaction: delete-if-present, insert-if-absent. Concurrent toggles
// on the same post serialize on the row instead of losing updates.
func (r *postgresPostRepo) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE id = $1`, postID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, posts.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check like removal: %w", err)
	}

	liked := false
	if removed == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, userID)
		if err != nil {
			return false, fmt.Errorf("failed to add like: %w", err)
		}
		liked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return liked, nil
}

// AddComment appends a comment row to a post
func (r *postgresPostRepo) AddComment(ctx context.Context, comment *posts.Comment) error {
	query := `
		INSERT INTO post_comments (post_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		// Post deleted between the existence check and the insert
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return posts.ErrNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// listComments returns a post's comments in append order
func (r *postgresPostRepo) listComments(ctx context.Context, postID string) ([]posts.CommentView, error) {
	query := `
		SELECT author_id, content, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]posts.CommentView, 0)
	for rows.Next() {
		var c posts.CommentView
		if err := rows.Scan(&c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return comments, nil
}
