package services

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPasswordHashed(t *testing.T) {
	db := newTestDB(t)

	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	user := models.User{Name: "Jane", Email: "jane@example.com", Password: hashed, Role: models.RoleStudent, Status: models.StatusActive}
	require.NoError(t, db.Create(&user).Error)

	match, err := VerifyPassword(db, &user, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyPassword(db, &user, "wrong-pass")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyPasswordUpgradesLegacyPlaintext(t *testing.T) {
	db := newTestDB(t)

	// Account imported from the legacy system still stores plaintext
	user := models.User{Name: "Old", Email: "old@example.com", Password: "legacy-pass", Role: models.RoleStudent, Status: models.StatusActive}
	require.NoError(t, db.Create(&user).Error)

	match, err := VerifyPassword(db, &user, "legacy-pass")
	require.NoError(t, err)
	assert.True(t, match)

	// The stored credential is now a hash of the same password
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.NotEqual(t, "legacy-pass", reloaded.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("legacy-pass")))

	// Subsequent logins verify against the hash
	match, err = VerifyPassword(db, &reloaded, "legacy-pass")
	require.NoError(t, err)
	assert.True(t, match)
}
