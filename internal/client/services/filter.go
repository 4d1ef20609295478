package services

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrijs2005/usergate/internal/client/models"
)

// FilterUsers keeps the users whose first name, last name or email contains
// term, ignoring case. An empty term keeps everything.
func FilterUsers(users []models.User, term string) []models.User {
	if term == "" {
		return slices.Clone(users)
	}

	// A Caser is stateful; one per call.
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(fold.String(u.FirstName), needle) ||
			strings.Contains(fold.String(u.LastName), needle) ||
			strings.Contains(fold.String(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}
