package password_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/anupam2nd/mylavanya-sub003/shared/password"
)

func TestErrors(t *testing.T) {
	if password.ErrInvalidPassword.Error() != "invalid password" {
		t.Errorf("expected ErrInvalidPassword message to be 'invalid password', got %s", password.ErrInvalidPassword.Error())
	}
	if password.ErrEmptyPassword.Error() != "password cannot be empty" {
		t.Errorf("expected ErrEmptyPassword message to be 'password cannot be empty', got %s", password.ErrEmptyPassword.Error())
	}
	if password.ErrMalformedHash.Error() != "malformed password hash" {
		t.Errorf("expected ErrMalformedHash message to be 'malformed password hash', got %s", password.ErrMalformedHash.Error())
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectError   bool
		expectedError error
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:          "empty password",
			password:      "",
			expectError:   true,
			expectedError: password.ErrEmptyPassword,
		},
		{
			name:        "short password",
			password:    "abc",
			expectError: false,
		},
		{
			name:        "long password",
			password:    strings.Repeat("a", 100),
			expectError: false,
		},
		{
			name:        "password with special characters",
			password:    "p@ssw0rd!#$%",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(hash, "$pbkdf2-sha256$i=") {
				t.Errorf("expected hash to carry the pbkdf2-sha256 prefix, got %s", hash)
			}
			if hash == tt.password {
				t.Errorf("hash should not equal the plaintext password")
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Errorf("two hashes of the same password should differ by salt")
	}
}

func TestHashWithRounds(t *testing.T) {
	hash, err := password.HashWithRounds("validPassword123", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(hash, "$pbkdf2-sha256$i=20000$") {
		t.Errorf("expected 20000 iterations in the encoded hash, got %s", hash)
	}

	if err := password.Verify("validPassword123", hash); err != nil {
		t.Errorf("expected hash to verify, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("validPassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{
			name:     "matching password",
			password: "validPassword123",
			hash:     hash,
		},
		{
			name:          "wrong password",
			password:      "wrongPassword",
			hash:          hash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty password",
			password:      "",
			hash:          hash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty hash",
			password:      "validPassword123",
			hash:          "",
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "foreign hash format",
			password:      "validPassword123",
			hash:          "$2a$10$abcdefghijklmnopqrstuv",
			expectedError: password.ErrMalformedHash,
		},
		{
			name:          "truncated hash",
			password:      "validPassword123",
			hash:          "$pbkdf2-sha256$i=100000",
			expectedError: password.ErrMalformedHash,
		},
		{
			name:          "non numeric iterations",
			password:      "validPassword123",
			hash:          "$pbkdf2-sha256$i=abc$c2FsdA$aGFzaA",
			expectedError: password.ErrMalformedHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}
