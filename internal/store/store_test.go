package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/yanews/internal/database/dbtest"
	"github.com/emilythestrangee/yanews/internal/models"
)

type fixture struct {
	news     *NewsStore
	comments *CommentStore
	users    *UserStore
	author   *models.User
	reader   *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t)
	f := &fixture{
		news:     NewNewsStore(db),
		comments: NewCommentStore(db),
		users:    NewUserStore(db),
		author:   &models.User{Username: "Автор", Password: "x"},
		reader:   &models.User{Username: "Читатель", Password: "x"},
	}
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, f.author))
	require.NoError(t, f.users.Create(ctx, f.reader))
	return f
}

func TestNewsPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := models.Today(time.Now().UTC())

	for i := 0; i < 15; i++ {
		require.NoError(t, f.news.Create(ctx, &models.News{
			Title: fmt.Sprintf("Новость %d", i),
			Text:  "Просто текст.",
			Date:  today.AddDate(0, 0, -i),
		}))
	}

	page, err := f.news.Page(ctx, 1, NewsPerPage)
	require.NoError(t, err)
	require.Len(t, page.Items, NewsPerPage)
	assert.Equal(t, int64(15), page.Total)
	assert.Equal(t, 2, page.NumPages)
	assert.False(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.Equal(t, "Новость 0", page.Items[0].Title)
	for i := 1; i < len(page.Items); i++ {
		assert.False(t, page.Items[i].Date.After(page.Items[i-1].Date), "dates must not increase")
	}

	second, err := f.news.Page(ctx, 2, NewsPerPage)
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	assert.True(t, second.HasPrevious())
	assert.False(t, second.HasNext())
	assert.Equal(t, "Новость 10", second.Items[0].Title)

	clamped, err := f.news.Page(ctx, 99, NewsPerPage)
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Number)

	first, err := f.news.Page(ctx, -3, NewsPerPage)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)
}

func TestNewsPageEmpty(t *testing.T) {
	f := newFixture(t)

	page, err := f.news.Page(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
}

func TestNewsCreateDefaultsDate(t *testing.T) {
	f := newFixture(t)
	n := &models.News{Title: "Заголовок", Text: "Текст"}
	require.NoError(t, f.news.Create(context.Background(), n))
	assert.False(t, n.Date.IsZero())
	assert.Equal(t, 0, n.Date.Hour())
}

func TestNewsGetOrdersComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n := &models.News{Title: "Заголовок", Text: "Текст"}
	require.NoError(t, f.news.Create(ctx, n))

	now := time.Now().UTC()
	// inserted newest first so id order disagrees with created order
	for i := 2; i >= 0; i-- {
		require.NoError(t, f.comments.Create(ctx, &models.Comment{
			NewsID:   n.ID,
			AuthorID: f.author.ID,
			Text:     fmt.Sprintf("Комментарий %d", i),
			Created:  now.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := f.news.Get(ctx, n.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 3)
	for i, c := range got.Comments {
		assert.Equal(t, fmt.Sprintf("Комментарий %d", i), c.Text)
		assert.Equal(t, "Автор", c.Author.Username)
	}

	listed, err := f.comments.ListByNews(ctx, n.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Комментарий 0", listed[0].Text)

	_, err = f.news.Get(ctx, n.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n := &models.News{Title: "Заголовок", Text: "Текст"}
	require.NoError(t, f.news.Create(ctx, n))
	c := &models.Comment{NewsID: n.ID, AuthorID: f.author.ID, Text: "Комментарий автора"}
	require.NoError(t, f.comments.Create(ctx, c))
	assert.False(t, c.Created.IsZero())

	_, err := f.comments.GetOwned(ctx, c.ID, f.reader.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	owned, err := f.comments.GetOwned(ctx, c.ID, f.author.ID)
	require.NoError(t, err)

	foreign := *owned
	foreign.AuthorID = f.reader.ID
	assert.ErrorIs(t, f.comments.UpdateText(ctx, &foreign, "чужой"), ErrNotFound)
	assert.ErrorIs(t, f.comments.Delete(ctx, &foreign), ErrNotFound)

	require.NoError(t, f.comments.UpdateText(ctx, owned, "Обновлённый текст"))
	reloaded, err := f.comments.GetOwned(ctx, c.ID, f.author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Обновлённый текст", reloaded.Text)

	require.NoError(t, f.comments.Delete(ctx, owned))
	count, err := f.comments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.users.Create(ctx, &models.User{Username: "Автор", Password: "y"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	u, err := f.users.GetByUsername(ctx, "Читатель")
	require.NoError(t, err)
	assert.Equal(t, f.reader.ID, u.ID)

	u, err = f.users.GetByID(ctx, f.author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Автор", u.Username)

	_, err = f.users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.users.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
