//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"

	"github.com/emilythestrangee/yanews/internal/database"
	"github.com/emilythestrangee/yanews/internal/models"
)

func TestPostgresStores(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("yanews"),
		tcpostgres.WithUsername("yanews"),
		tcpostgres.WithPassword("yanews"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := database.Open(postgres.Open(dsn), zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	db := svc.GetDB()
	users := NewUserStore(db)
	news := NewNewsStore(db)
	comments := NewCommentStore(db)

	author := &models.User{Username: "Автор", Password: "x"}
	require.NoError(t, users.Create(ctx, author))
	assert.ErrorIs(t, users.Create(ctx, &models.User{Username: "Автор", Password: "x"}), ErrUsernameTaken)

	n := &models.News{Title: "Заголовок", Text: "Текст"}
	require.NoError(t, news.Create(ctx, n))

	c := &models.Comment{NewsID: n.ID, AuthorID: author.ID, Text: "Комментарий"}
	require.NoError(t, comments.Create(ctx, c))

	got, err := news.Get(ctx, n.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)

	assert.Equal(t, "up", svc.Health(ctx)["status"])

	require.NoError(t, db.Delete(&models.News{}, n.ID).Error)
	count, err := comments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "comments cascade with their news item")
}
