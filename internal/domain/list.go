package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is a curated, shareable collection of dictionary words.
// Official lists have a nil OwnerID and are managed by admins.
type List struct {
	ID          uuid.UUID
	OwnerID     *uuid.UUID
	Name        string
	Description *string
	Difficulty  DifficultyLevel
	IsPublic    bool
	CoverURL    *string
	WordCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// Words is populated on detail reads.
	Words []Word
}

// IsDeleted returns true if the list has been soft-deleted.
func (l *List) IsDeleted() bool {
	return l.DeletedAt != nil
}

// IsOfficial returns true for admin-curated lists without an owner.
func (l *List) IsOfficial() bool {
	return l.OwnerID == nil
}

// UserList is a per-user copy of a list. Identified by the composite key
// (UserID, ListID). The user may rename the copy without affecting the
// shared list.
type UserList struct {
	UserID            uuid.UUID
	ListID            uuid.UUID
	CustomName        *string
	CustomDescription *string
	Progress          int // 0..100, share of member words learned
	AddedAt           time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time

	// List is populated on detail reads.
	List *List
}

// IsDeleted returns true if the user removed the list.
func (ul *UserList) IsDeleted() bool {
	return ul.DeletedAt != nil
}
