// Package seed creates demo data for development databases. It is never
// invoked by the server itself.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded account gets.
const DefaultPassword = "password123"

var tagPool = []string{
	"golang", "music", "coffee", "photography", "travel", "food",
	"books", "movies", "fitness", "art", "gaming", "nature",
}

// Options controls the volume of generated data.
type Options struct {
	Users           int
	PostsPerUser    int
	LikesPerUser    int
	CommentsPerUser int
}

// DefaultOptions returns a small but lively data set.
func DefaultOptions() Options {
	return Options{Users: 10, PostsPerUser: 5, LikesPerUser: 8, CommentsPerUser: 4}
}

// Factory builds domain entities and persists them.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a Factory bound to the provided DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, rng: rand.New(rand.NewSource(seed))}
}

// CreateUser persists a generated user. Overrides run before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	handle := strings.ToLower(gofakeit.Username())
	if len(handle) < 3 {
		handle += fmt.Sprintf("%d", gofakeit.Number(100, 999))
	}
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Handle:   handle,
		Password: string(hash),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a generated post with one to three pooled tags and a
// created_at spread over the last two weeks so trending has data to chew on.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Content:   gofakeit.Paragraph(1, 2, 8, " "),
		CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(14*24)) * time.Hour),
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}

	tagCount := 1 + f.rng.Intn(3)
	picked := f.rng.Perm(len(tagPool))[:tagCount]
	for i, idx := range picked {
		row := models.PostTag{PostID: post.ID, Position: i, Tag: tagPool[idx]}
		if err := f.db.Create(&row).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

// CreateComment persists a generated comment on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(12),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// Like inserts a like row, ignoring duplicates.
func (f *Factory) Like(user *models.User, post *models.Post) error {
	return f.db.Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		user.ID, post.ID, time.Now().UTC(),
	).Error
}

// Run populates the database per opts.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)

	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)

		for j := 0; j < opts.PostsPerUser; j++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			posts = append(posts, post)
		}
	}

	for _, user := range users {
		for i := 0; i < opts.LikesPerUser && len(posts) > 0; i++ {
			if err := f.Like(user, posts[f.rng.Intn(len(posts))]); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
		for i := 0; i < opts.CommentsPerUser && len(posts) > 0; i++ {
			if _, err := f.CreateComment(user, posts[f.rng.Intn(len(posts))]); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d posts", len(users), len(posts))
	return nil
}
