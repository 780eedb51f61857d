package utils

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"golang.org/x/crypto/pbkdf2" // Legacy hashes
	"golang.org/x/crypto/scrypt" // Legacy hashes
)

// ErrUnknownHash is returned for hashes in a format this package cannot verify
var ErrUnknownHash = errors.New("unknown password hash format")

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
//
// Besides bcrypt it accepts the salted formats written by the previous deployment:
//
//	pbkdf2:<digest>:<iterations>$<salt>$<hex>
//	scrypt:<N>:<r>:<p>$<salt>$<hex>
func CheckPassword(stored, password string) (bool, error) {
	switch {
	case strings.HasPrefix(stored, "$2"):
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	case strings.HasPrefix(stored, "pbkdf2:"), strings.HasPrefix(stored, "scrypt:"):
		return checkSaltedHash(stored, password)
	default:
		return false, ErrUnknownHash
	}
}

// NeedsRehash reports whether a stored hash should be replaced by a bcrypt one
func NeedsRehash(stored string) bool {
	return !strings.HasPrefix(stored, "$2")
}

func checkSaltedHash(stored, password string) (bool, error) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return false, ErrUnknownHash
	}
	method, salt, want := parts[0], parts[1], parts[2]
	expected, err := hex.DecodeString(want)
	if err != nil {
		return false, ErrUnknownHash
	}
	params := strings.Split(method, ":")

	var got []byte
	switch params[0] {
	case "pbkdf2":
		if len(params) < 2 {
			return false, ErrUnknownHash
		}
		newHash, err := digest(params[1])
		if err != nil {
			return false, err
		}
		iterations := 600000
		if len(params) > 2 {
			if iterations, err = strconv.Atoi(params[2]); err != nil || iterations <= 0 {
				return false, ErrUnknownHash
			}
		}
		got = pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash)
	case "scrypt":
		n, r, p := 32768, 8, 1
		if len(params) == 4 {
			var errN, errR, errP error
			n, errN = strconv.Atoi(params[1])
			r, errR = strconv.Atoi(params[2])
			p, errP = strconv.Atoi(params[3])
			if errN != nil || errR != nil || errP != nil {
				return false, ErrUnknownHash
			}
		}
		if got, err = scrypt.Key([]byte(password), []byte(salt), n, r, p, 64); err != nil {
			return false, err
		}
	default:
		return false, ErrUnknownHash
	}
	return subtle.ConstantTimeCompare(got, expected) == 1, nil
}

func digest(name string) (func() hash.Hash, error) {
	switch name {
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	case "sha1":
		return sha1.New, nil
	default:
		return nil, ErrUnknownHash
	}
}
