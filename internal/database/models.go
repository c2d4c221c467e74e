package database

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the bun model backing the users table.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string    `bun:"id,pk,type:uuid"`
	Name         string    `bun:"name,notnull"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Goal is the bun model backing the goals table.
type Goal struct {
	bun.BaseModel `bun:"table:goals,alias:g"`

	ID        string    `bun:"id,pk,type:uuid"`
	OwnerID   string    `bun:"owner_id,notnull,type:uuid"`
	Text      string    `bun:"text,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
