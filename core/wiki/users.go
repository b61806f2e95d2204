package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"article-viewer-api/core/domain"
	coreerrors "article-viewer-api/core/errors"
)

// APIUsers names the user resolution source in errors and logs
const APIUsers = "users"

// UsersURL returns the user query request for the given usernames
func UsersURL(article domain.ArticleRef, usernames []string) string {
	escaped := make([]string, len(usernames))
	for i, name := range usernames {
		escaped[i] = url.QueryEscape(name)
	}
	return fmt.Sprintf("%s/w/api.php?action=query&list=users&format=json&ususers=%s",
		article.WikiURL(), strings.Join(escaped, "|"))
}

type usersResponse struct {
	Query *struct {
		Users []struct {
			UserID  int     `json:"userid"`
			Name    string  `json:"name"`
			Missing *string `json:"missing"`
			Invalid *string `json:"invalid"`
		} `json:"users"`
	} `json:"query"`
}

func (r *usersResponse) validate(api string) error {
	if r.Query == nil || r.Query.Users == nil {
		return &coreerrors.MalformedResponseError{API: api, Field: "query.users"}
	}
	return nil
}

// ResolveUsers looks up wiki user ids by username. These ids belong to the
// wiki and are unrelated to any local account id. Users the wiki reports as
// missing or invalid keep their position with a zero id.
func (c *Client) ResolveUsers(ctx context.Context, article domain.ArticleRef, usernames []string) (domain.Roster, error) {
	if len(usernames) == 0 {
		return domain.Roster{}, nil
	}

	var resp usersResponse
	key := fmt.Sprintf("wiki:users:%s.%s:%s", article.Language, article.Project, strings.Join(usernames, "|"))
	if err := c.getJSON(ctx, APIUsers, key, UsersURL(article, usernames), &resp); err != nil {
		return nil, err
	}

	roster := make(domain.Roster, 0, len(resp.Query.Users))
	for _, u := range resp.Query.Users {
		author := domain.Author{UserID: u.UserID, Name: u.Name}
		if u.Missing != nil || u.Invalid != nil {
			author.UserID = 0
			c.deps.Logger.Warn("Wiki user could not be resolved", map[string]interface{}{
				"name":     u.Name,
				"language": article.Language,
				"project":  article.Project,
			})
		}
		roster = append(roster, author)
	}
	return roster, nil
}
