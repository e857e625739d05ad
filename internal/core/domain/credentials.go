package domain

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// gravatarBase is the avatar image endpoint keyed by email hash.
const gravatarBase = "https://secure.gravatar.com/avatar/"

// HashPassword returns the hex SHA-256 digest that the service expects in
// place of a password. Passwords never leave the client in cleartext.
func HashPassword(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])
}

// EmailHash returns the Gravatar identifier for email.
func EmailHash(email string) string {
	h := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(h[:])
}

// AvatarURL returns the Gravatar image URL for email at size pixels.
// The service answers 404 when the address has no avatar.
func AvatarURL(email string, size int) string {
	return fmt.Sprintf("%s%s.jpg?s=%d&d=404", gravatarBase, EmailHash(email), size)
}
