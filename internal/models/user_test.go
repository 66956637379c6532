package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleTeacher.Valid())
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleParent.Valid())
	assert.False(t, Role("principal").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserJSONHidesPassword(t *testing.T) {
	u := User{
		ID:           bson.NewObjectID(),
		Name:         Name{FirstName: "John", LastName: "Doe"},
		Email:        "johndoe@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleStudent,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, out, "password")
	assert.Equal(t, "johndoe@example.com", out["email"])
}
