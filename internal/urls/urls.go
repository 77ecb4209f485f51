// Package urls builds the application's paths in one place, so handlers,
// templates and tests agree on them.
package urls

import "fmt"

const (
	Home   = "/"
	Login  = "/auth/login/"
	Logout = "/auth/logout/"
	Signup = "/auth/signup/"
	Health = "/health"

	// gin route patterns
	DetailPattern = "/news/:id/"
	EditPattern   = "/edit_comment/:id/"
	DeletePattern = "/delete_comment/:id/"
)

func Detail(newsID uint) string {
	return fmt.Sprintf("/news/%d/", newsID)
}

// Comments points at the comment section of a news page.
func Comments(newsID uint) string {
	return Detail(newsID) + "#comments"
}

func Edit(commentID uint) string {
	return fmt.Sprintf("/edit_comment/%d/", commentID)
}

func Delete(commentID uint) string {
	return fmt.Sprintf("/delete_comment/%d/", commentID)
}

func Page(n int) string {
	return fmt.Sprintf("%s?page=%d", Home, n)
}
