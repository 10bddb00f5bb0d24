package storage

import (
	"testing"
	"time"

	"github.com/amadeudias/blog-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore() *Store {
	s := New()
	s.Seed()
	return s
}

func TestSeedCounts(t *testing.T) {
	s := newSeededStore()

	assert.Len(t, s.ListArticles(), 6)
	assert.Len(t, s.ListCategories(), 6)
	require.NotNil(t, s.GetAuthor())
	assert.Equal(t, "Amadeu Dias", s.GetAuthor().Name)
}

func TestCreateArticleRoundtrip(t *testing.T) {
	s := newSeededStore()

	created, err := s.CreateArticle(ArticleInput{
		Title:    "GitOps na Prática",
		Content:  "Conteúdo sobre GitOps...",
		Category: "DevOps",
		Tags:     []string{"GitOps", "ArgoCD"},
		ReadTime: 4,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "gitops-na-pr-tica", created.Slug)
	assert.Equal(t, "Conteúdo sobre GitOps...", created.Content)
	assert.False(t, created.PublishedAt.IsZero())

	got := s.GetArticleBySlug(created.Slug)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	byID := s.GetArticleByID(created.ID)
	require.NotNil(t, byID)
	assert.Equal(t, created.Slug, byID.Slug)
}

func TestCreateArticleDerivesExcerpt(t *testing.T) {
	s := New()

	short, err := s.CreateArticle(ArticleInput{
		Title: "Curto", Content: "abc", Category: "DevOps", ReadTime: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "abc...", short.Excerpt)

	long := make([]rune, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'x')
	}
	created, err := s.CreateArticle(ArticleInput{
		Title: "Longo", Content: string(long), Category: "DevOps", ReadTime: 1,
	})
	require.NoError(t, err)
	assert.Len(t, []rune(created.Excerpt), 153)
}

func TestCreateArticleDuplicateSlug(t *testing.T) {
	s := newSeededStore()

	_, err := s.CreateArticle(ArticleInput{
		Title:    "Outro Artigo",
		Slug:     "implementando-cicd-jenkins-docker",
		Content:  "x",
		Category: "DevOps",
		ReadTime: 1,
	})
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestUpdateArticleMergesPatch(t *testing.T) {
	s := newSeededStore()
	a := s.GetArticleBySlug("implementando-cicd-jenkins-docker")
	require.NotNil(t, a)

	title := "Novo Título"
	featured := false
	updated := s.UpdateArticle(a.ID, ArticlePatch{Title: &title, Featured: &featured})
	require.NotNil(t, updated)
	assert.Equal(t, "Novo Título", updated.Title)
	assert.False(t, updated.Featured)
	assert.Equal(t, a.Content, updated.Content)
	assert.Equal(t, a.PublishedAt.Unix(), updated.PublishedAt.Unix())

	assert.Nil(t, s.UpdateArticle("missing-id", ArticlePatch{Title: &title}))
}

func TestStoreReturnsClones(t *testing.T) {
	s := newSeededStore()
	a := s.GetArticleBySlug("implementando-cicd-jenkins-docker")
	require.NotNil(t, a)

	a.Title = "mutated"
	a.Tags[0] = "mutated"

	fresh := s.GetArticleBySlug("implementando-cicd-jenkins-docker")
	assert.Equal(t, "Implementando CI/CD com Jenkins e Docker", fresh.Title)
	assert.Equal(t, "DevOps", fresh.Tags[0])
}

func TestDeleteArticleTwice(t *testing.T) {
	s := newSeededStore()
	a := s.GetArticleBySlug("seguranca-aws-iam-compliance")
	require.NotNil(t, a)

	assert.True(t, s.DeleteArticle(a.ID))
	assert.False(t, s.DeleteArticle(a.ID))
	assert.Nil(t, s.GetArticleByID(a.ID))
	assert.Len(t, s.ListArticles(), 5)
}

func TestListFeatured(t *testing.T) {
	s := newSeededStore()

	featured := s.ListFeatured()
	assert.Len(t, featured, 3)
	for _, a := range featured {
		assert.True(t, a.Featured)
	}
}

func TestListByCategoryCaseInsensitive(t *testing.T) {
	s := newSeededStore()

	lower := s.ListByCategory("devops")
	upper := s.ListByCategory("DevOps")
	assert.Len(t, lower, 2)
	assert.Equal(t, len(upper), len(lower))

	assert.Empty(t, s.ListByCategory("nonexistent"))
}

func TestListLatestOrderingAndLimit(t *testing.T) {
	s := newSeededStore()

	latest := s.ListLatest(3)
	require.Len(t, latest, 3)
	assert.Equal(t, "implementando-cicd-jenkins-docker", latest[0].Slug)
	for i := 1; i < len(latest); i++ {
		assert.False(t, latest[i].PublishedAt.After(latest[i-1].PublishedAt))
	}

	// Non-positive limit falls back to 5.
	assert.Len(t, s.ListLatest(0), 5)
	assert.Len(t, s.ListLatest(100), 6)
}

func TestSearch(t *testing.T) {
	s := newSeededStore()

	// Matches title, content, and tags, case-insensitively.
	hits := s.Search("KUBERNETES")
	assert.Len(t, hits, 2)

	byTag := s.Search("terraform")
	require.Len(t, byTag, 1)
	assert.Equal(t, "infraestrutura-codigo-terraform-aws", byTag[0].Slug)

	assert.Empty(t, s.Search("zzz-no-such-term"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
	assert.Equal(t, "ci-cd-com-jenkins", Slugify("CI/CD com Jenkins"))
	assert.Equal(t, "a-b-c", Slugify("  a  b  c  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestCategoriesSortedByName(t *testing.T) {
	s := newSeededStore()

	cats := s.ListCategories()
	require.Len(t, cats, 6)
	for i := 1; i < len(cats); i++ {
		assert.LessOrEqual(t, cats[i-1].Name, cats[i].Name)
	}

	devops := s.GetCategoryBySlug("devops")
	require.NotNil(t, devops)
	assert.Equal(t, "DevOps", devops.Name)
	assert.Equal(t, 12, devops.ArticleCount)

	assert.Nil(t, s.GetCategoryBySlug("missing"))
}

func TestSetAuthorReplaces(t *testing.T) {
	s := newSeededStore()
	before := s.GetAuthor()

	updated := s.SetAuthor(models.Author{Name: "Fulano", Title: "SRE"})
	assert.Equal(t, "Fulano", updated.Name)
	assert.NotEmpty(t, updated.ID)
	assert.NotEqual(t, before.Name, s.GetAuthor().Name)
}

func TestSeedRecencyIsStaggered(t *testing.T) {
	s := newSeededStore()
	all := s.ListArticles()
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		gap := all[i-1].PublishedAt.Sub(all[i].PublishedAt)
		assert.GreaterOrEqual(t, gap, 23*time.Hour)
	}
}
