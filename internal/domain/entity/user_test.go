package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SummaryOmitsPasswordHash(t *testing.T) {
	user := &User{
		ID:           7,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@college.edu",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleStudent,
	}

	body, err := json.Marshal(user.Summary())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":7,"firstName":"Ada","lastName":"Lovelace","email":"ada@college.edu","role":"student"}`, string(body))
	assert.NotContains(t, string(body), "$2a$")
}

func TestUser_SummaryNil(t *testing.T) {
	var user *User
	assert.Nil(t, user.Summary())
}
