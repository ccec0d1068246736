package password

import (
	"os"
	"strconv"

	"github.com/alexedwards/argon2id"
)

type Params struct {
	Memory      uint32 // kibibytes
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// Default policy ~128MB, t=3; adjust by env without code changes.
func LoadParamsFromEnv() Params {
	return Params{
		Memory:      envUint32("ARGON2_MEMORY", 131072), // 128 MiB
		Iterations:  envUint32("ARGON2_ITER", 3),
		Parallelism: envUint8("ARGON2_PAR", 1),
		SaltLength:  16,
		KeyLength:   32,
	}
}

var policy = LoadParamsFromEnv()

// Hash returns a PHC string like `$argon2id$v=19$m=131072,t=3,p=1$...`
func Hash(plain string) (string, error) {
	p := argon2id.Params{
		Memory:      policy.Memory,
		Iterations:  policy.Iterations,
		Parallelism: policy.Parallelism,
		SaltLength:  policy.SaltLength,
		KeyLength:   policy.KeyLength,
	}
	return argon2id.CreateHash(plain, &p)
}

// Verify checks a password against a PHC hash.
func Verify(plain, phc string) (bool, error) {
	return argon2id.ComparePasswordAndHash(plain, phc)
}

func envUint32(key string, def uint32) uint32 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint32(n)
		}
	}
	return def
}

func envUint8(key string, def uint8) uint8 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 8); err == nil {
			return uint8(n)
		}
	}
	return def
}
