package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var resourceRowColumns = []string{
	"id", "title", "slug", "description", "content", "type", "category", "difficulty", "image", "url", "author",
	"tags", "featured", "views", "likes", "published", "created_at", "updated_at",
}

func resourceRow(id, slug string, tags string, views int) *sqlmock.Rows {
	return sqlmock.NewRows(resourceRowColumns).AddRow(
		id, "Natural Language Processing with Python", slug, "Hands-on text processing", "", "book", "NLP",
		"Beginner", "", "", "", tags, false, views, 0, true, fixedTime, fixedTime,
	)
}

var eventRowColumns = []string{
	"id", "title", "slug", "description", "content", "date", "date_display", "time", "location", "image",
	"gallery", "attendees", "category", "speakers", "registration_link", "tags", "published", "created_at", "updated_at",
}

func eventRow(rows *sqlmock.Rows, id, slug string, date any) *sqlmock.Rows {
	return rows.AddRow(
		id, "AI Tech Session", slug, "Insights", "<p>About</p>", date, "October 11, 2025", "12:30 PM", "Auditorium",
		"/img/event.png", "{/img/a.png,/img/b.png}", 250, "Technology",
		[]byte(`[{"name":"Dr. Sarah Johnson","title":"AI Research Lead"}]`), "", "{AI}", true, fixedTime, fixedTime,
	)
}
