// Package cache implements the tag-based invalidation scheme that keeps
// derived views consistent after a mutation. Tags are pure string keys
// derived from entity identity; invalidating a tag signals that any result
// computed under it must be recomputed on next read.
package cache

import "fmt"

// Entity is a cacheable entity kind.
type Entity string

const (
	EntityArticles Entity = "articles"
	EntityUsers    Entity = "users"
)

// GlobalTag covers every row of an entity kind.
func GlobalTag(entity Entity) string {
	return fmt.Sprintf("global:%s", entity)
}

// IDTag scopes to a single row by id.
func IDTag(entity Entity, id string) string {
	return fmt.Sprintf("id:%s-%s", id, entity)
}

// SlugTag scopes to a single article by slug.
func SlugTag(entity Entity, slug string) string {
	return fmt.Sprintf("article:%s-%s", slug, entity)
}

// UserTag scopes to all rows authored by one user.
func UserTag(entity Entity, userID string) string {
	return fmt.Sprintf("user:%s-%s", userID, entity)
}

// ArticleGlobalTag covers all articles.
func ArticleGlobalTag() string {
	return GlobalTag(EntityArticles)
}

// ArticleIDTag scopes to one article's id.
func ArticleIDTag(id string) string {
	return IDTag(EntityArticles, id)
}

// ArticleSlugTag scopes to one article's slug.
func ArticleSlugTag(slug string) string {
	return SlugTag(EntityArticles, slug)
}

// UserArticlesTag scopes to one author's articles.
func UserArticlesTag(userID string) string {
	return UserTag(EntityArticles, userID)
}
