package user_test

import (
	"testing"

	"github.com/1dhruvsingh/ResumeAI/pkg/iam/user"
	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/stretchr/testify/assert"
)

func TestLinkGoogleKeepsExistingName(t *testing.T) {
	u := user.NewPasswordUser("ada@example.com", "hash", "Ada")

	u.LinkGoogle("g-1", "Ada Lovelace")

	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, kernel.GoogleID("g-1"), *u.GoogleID)
	assert.True(t, u.HasPassword())
}

func TestLinkGoogleFillsEmptyName(t *testing.T) {
	u := user.NewGoogleUser("g-1", "ada@example.com", "")

	u.LinkGoogle("g-1", "Ada Lovelace")

	assert.Equal(t, "Ada Lovelace", u.Name)
}

func TestCanAuthenticate(t *testing.T) {
	assert.True(t, user.NewPasswordUser("a@b.c", "hash", "A").CanAuthenticate())
	assert.True(t, user.NewGoogleUser("g", "a@b.c", "A").CanAuthenticate())
	assert.False(t, (&user.User{Email: "a@b.c"}).CanAuthenticate())
	assert.False(t, user.NewGoogleUser("g", "a@b.c", "A").HasPassword())
}

func TestToPublic(t *testing.T) {
	u := user.NewPasswordUser("a@b.c", "hash", "A")
	u.ID = 7

	assert.Equal(t, user.PublicUser{ID: 7, Email: "a@b.c", Name: "A"}, u.ToPublic())
}
