package storage

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar/"

// GravatarURL returns the identicon Gravatar for email. Gravatar keys on the
// MD5 of the trimmed, lower-cased address.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?d=identicon"
}
