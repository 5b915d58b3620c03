package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/pbkdf2"

	domain "github.com/CorvidLabs/ts-algochat/internal/domain"
)

const (
	pbkdf2Iterations = 100_000
	saltSize         = 32
	nonceSize        = 12
	keyFileExt       = ".key.json"
)

type keyEnvelope struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// FileKeyStore is a reference EncryptionKeyStorage backed by one file per
// address, each wrapping its stored key with a password-derived
// AES-256-GCM key (PBKDF2-SHA256, 100 000 iterations, a fresh 32-byte
// salt per file).
type FileKeyStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

var _ domain.EncryptionKeyStorage = (*FileKeyStore)(nil)

// NewFileKeyStore returns a FileKeyStore rooted at dir, wrapping every
// stored key with passphrase. dir must already exist.
func NewFileKeyStore(dir, passphrase string) *FileKeyStore {
	return &FileKeyStore{dir: dir, passphrase: passphrase}
}

func (s *FileKeyStore) Store(address string, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	aead, err := s.aeadForSalt(salt)
	if err != nil {
		return err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	ciphertext := aead.Seal(nil, nonce, key, []byte(address))

	env := keyEnvelope{Salt: salt, Nonce: nonce, Ciphertext: ciphertext}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return os.WriteFile(s.pathFor(address), b, 0o600)
}

func (s *FileKeyStore) Retrieve(address string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.pathFor(address))
	if err != nil {
		return nil, err
	}
	var env keyEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	aead, err := s.aeadForSalt(env.Salt)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, env.Nonce, env.Ciphertext, []byte(address))
}

func (s *FileKeyStore) Has(address string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.pathFor(address))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *FileKeyStore) Delete(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.pathFor(address))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileKeyStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), keyFileExt) {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), keyFileExt))
	}
	return out, nil
}

func (s *FileKeyStore) pathFor(address string) string {
	return filepath.Join(s.dir, address+keyFileExt)
}

func (s *FileKeyStore) aeadForSalt(salt []byte) (cipher.AEAD, error) {
	derivedKey := pbkdf2.Key([]byte(s.passphrase), salt, pbkdf2Iterations, 32, sha256.New)
	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
