package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

var ErrHashing = errors.New("password hashing failed")

type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLen     uint32
	KeyLen      uint32
}

// DefaultArgon2Params matches the parameters node-argon2 writes, so digests
// created by either side verify on the other.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 4,
		SaltLen:     16,
		KeyLen:      32,
	}
}

// HashPassword returns a PHC-encoded Argon2id digest:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
func HashPassword(pw string) (string, error) {
	return hashWith(pw, DefaultArgon2Params())
}

func hashWith(pw string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	h := argon2.IDKey([]byte(pw), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLen)
	enc := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		enc.EncodeToString(salt), enc.EncodeToString(h)), nil
}

// VerifyPassword reports whether pw matches digest. Argon2id and argon2i PHC
// strings and bcrypt digests are understood; anything else never matches.
func VerifyPassword(digest, pw string) bool {
	if digest == "" || pw == "" {
		return false
	}
	switch {
	case strings.HasPrefix(digest, "$argon2"):
		return verifyArgon2(digest, pw)
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pw)) == nil
	}
	return false
}

func verifyArgon2(digest, pw string) bool {
	variant, p, salt, want, err := parsePHC(digest)
	if err != nil {
		return false
	}
	var got []byte
	switch variant {
	case "argon2id":
		got = argon2.IDKey([]byte(pw), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(want)))
	case "argon2i":
		got = argon2.Key([]byte(pw), salt, p.Iterations, p.Memory, p.Parallelism, uint32(len(want)))
	default:
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

func parsePHC(s string) (string, Argon2Params, []byte, []byte, error) {
	// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
	parts := strings.Split(s, "$")
	if len(parts) != 6 || parts[0] != "" {
		return "", Argon2Params{}, nil, nil, errors.New("invalid password hash format")
	}
	variant := parts[1]
	ver, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if !strings.HasPrefix(parts[2], "v=") || err != nil || ver != argon2.Version {
		return "", Argon2Params{}, nil, nil, errors.New("unsupported argon2 version")
	}

	var p Argon2Params
	for _, kv := range strings.Split(parts[3], ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return "", Argon2Params{}, nil, nil, errors.New("invalid argon2 parameters")
		}
		bits := 32
		if k == "p" {
			bits = 8
		}
		n, err := strconv.ParseUint(v, 10, bits)
		if err != nil {
			return "", Argon2Params{}, nil, nil, fmt.Errorf("invalid argon2 parameter %s", k)
		}
		switch k {
		case "m":
			p.Memory = uint32(n)
		case "t":
			p.Iterations = uint32(n)
		case "p":
			p.Parallelism = uint8(n)
		default:
			return "", Argon2Params{}, nil, nil, errors.New("unknown argon2 parameter")
		}
	}
	if p.Memory == 0 || p.Iterations == 0 || p.Parallelism == 0 {
		return "", Argon2Params{}, nil, nil, errors.New("incomplete argon2 parameters")
	}

	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(parts[4])
	if err != nil {
		return "", Argon2Params{}, nil, nil, errors.New("invalid argon2 salt")
	}
	hash, err := enc.DecodeString(parts[5])
	if err != nil || len(hash) < 16 {
		return "", Argon2Params{}, nil, nil, errors.New("invalid argon2 hash")
	}
	return variant, p, salt, hash, nil
}
