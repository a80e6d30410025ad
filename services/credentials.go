package services

import (
	"lms/config"
	"lms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashPassword hashes a plaintext password with the configured bcrypt cost.
func HashPassword(password string) (string, error) {
	cost := bcrypt.DefaultCost
	if config.AppConfig != nil {
		cost = config.AppConfig.SaltRound
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a login attempt against the stored credential.
// Accounts imported from the legacy system still carry plaintext passwords;
// when the stored value matches the attempt verbatim, the credential is
// rehashed and persisted as a one-time migration before reporting success.
func VerifyPassword(db *gorm.DB, user *models.User, password string) (bool, error) {
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil {
		return true, nil
	}

	// Legacy plaintext match: upgrade in place.
	if user.Password != "" && user.Password == password {
		hashed, err := HashPassword(password)
		if err != nil {
			return false, err
		}
		if err := db.Model(user).Update("password", hashed).Error; err != nil {
			return false, err
		}
		user.Password = hashed
		return true, nil
	}

	return false, nil
}
