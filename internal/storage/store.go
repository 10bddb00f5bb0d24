package storage

import (
	"errors"
	"sync"

	"github.com/amadeudias/blog-core/internal/models"
)

// ErrSlugExists is returned by CreateArticle when the slug is already taken.
var ErrSlugExists = errors.New("slug already exists")

// Store is the in-memory repository for all three entity collections. It is
// constructed once at process start and passed by handle to the route layer;
// nothing is persisted across restarts. A single RWMutex guards the maps since
// Gin serves requests on parallel goroutines.
type Store struct {
	mu         sync.RWMutex
	articles   map[string]*models.Article
	categories map[string]*models.Category
	author     *models.Author
}

// New returns an empty store. Call Seed to load the fixed initial record set.
func New() *Store {
	return &Store{
		articles:   make(map[string]*models.Article),
		categories: make(map[string]*models.Category),
	}
}
