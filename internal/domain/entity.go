package domain

// EntityKind identifies the entity an existence check or not-found error refers to
type EntityKind string

const (
	EntityKindTopic   EntityKind = "Topic"
	EntityKindUser    EntityKind = "User"
	EntityKindArticle EntityKind = "Article"
	EntityKindComment EntityKind = "Comment"
)

// HasNumericKey reports whether the kind is addressed by a system-assigned integer id
func (k EntityKind) HasNumericKey() bool {
	return k == EntityKindArticle || k == EntityKindComment
}
