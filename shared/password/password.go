package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Hashes are stored in modular-crypt form:
//
//	$pbkdf2-sha256$i={iterations}${salt_b64}${hash_b64}
//
// with iterations = 10000 * DefaultSaltRounds and a 16-byte random salt.
const (
	DefaultSaltRounds   = 10
	IterationMultiplier = 10000

	saltLength = 16
	keyLength  = 32

	prefix = "$pbkdf2-sha256$"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrMalformedHash   = errors.New("malformed password hash")
)

// Hash derives a PBKDF2-SHA256 hash of the password with the default salt rounds.
func Hash(password string) (string, error) {
	return HashWithRounds(password, DefaultSaltRounds)
}

// HashWithRounds derives a PBKDF2-SHA256 hash with iterations = 10000 * saltRounds.
func HashWithRounds(password string, saltRounds int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if saltRounds <= 0 {
		saltRounds = DefaultSaltRounds
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	iterations := saltRounds * IterationMultiplier
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	encoded := fmt.Sprintf("%si=%d$%s$%s",
		prefix,
		iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify checks if the provided password matches the stored hash.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	iterations, salt, key, err := decode(hash)
	if err != nil {
		return err
	}

	candidate := pbkdf2.Key([]byte(password), salt, iterations, len(key), sha256.New)

	if subtle.ConstantTimeCompare(candidate, key) != 1 {
		return ErrInvalidPassword
	}

	return nil
}

func decode(hash string) (iterations int, salt, key []byte, err error) {
	if !strings.HasPrefix(hash, prefix) {
		return 0, nil, nil, ErrMalformedHash
	}

	parts := strings.Split(strings.TrimPrefix(hash, prefix), "$")
	if len(parts) != 3 {
		return 0, nil, nil, ErrMalformedHash
	}

	iterStr, ok := strings.CutPrefix(parts[0], "i=")
	if !ok {
		return 0, nil, nil, ErrMalformedHash
	}

	iterations, err = strconv.Atoi(iterStr)
	if err != nil || iterations <= 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return 0, nil, nil, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	return iterations, salt, key, nil
}
