package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the sealing key from the file secret.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

type fileTokenStore struct {
	path   string
	key    string
	secret []byte

	mu sync.Mutex

	// derived caches the last argon2 result so repeated loads of the same
	// sealed value skip the key derivation.
	derivedSalt string
	derivedKey  []byte
}

type sessionDocument struct {
	Tokens map[string]persistedToken `json:"tokens"`
}

type persistedToken struct {
	// Value is the plain token, or base64(salt ‖ nonce ‖ ciphertext) when
	// Sealed is set.
	Value     string    `json:"value"`
	Sealed    bool      `json:"sealed,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFileTokenStore returns a [TokenStore] persisting the token under key in
// the JSON document at path. The file is created with mode 0600 on first
// Save. When secret is non-empty the token is sealed with AES-256-GCM under an
// argon2id key derived from secret and a random per-write salt.
func NewFileTokenStore(path, key, secret string) TokenStore {
	return &fileTokenStore{
		path:   path,
		key:    key,
		secret: []byte(secret),
	}
}

func (f *fileTokenStore) Load(_ context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return "", false, err
	}

	entry, ok := doc.Tokens[f.key]
	if !ok || entry.Value == "" {
		return "", false, nil
	}
	if !entry.Sealed {
		return entry.Value, true, nil
	}

	token, err := f.open(entry.Value)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
	}
	return token, token != "", nil
}

func (f *fileTokenStore) Save(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil && !errors.Is(err, ErrCorruptedSession) {
		return err
	}
	if doc.Tokens == nil {
		doc.Tokens = make(map[string]persistedToken)
	}

	entry := persistedToken{Value: token, UpdatedAt: time.Now().UTC()}
	if len(f.secret) > 0 {
		sealed, err := f.seal(token)
		if err != nil {
			return fmt.Errorf("seal session token: %w", err)
		}
		entry.Value, entry.Sealed = sealed, true
	}
	doc.Tokens[f.key] = entry

	return f.write(doc)
}

func (f *fileTokenStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil && !errors.Is(err, ErrCorruptedSession) {
		return err
	}
	if _, ok := doc.Tokens[f.key]; !ok && err == nil {
		return nil
	}
	delete(doc.Tokens, f.key)

	if len(doc.Tokens) == 0 {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}
	return f.write(doc)
}

// read returns an empty document when the file does not exist. A file that
// cannot be decoded yields an empty document and ErrCorruptedSession so that
// Save and Clear can overwrite it.
func (f *fileTokenStore) read() (sessionDocument, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return sessionDocument{}, nil
		}
		return sessionDocument{}, fmt.Errorf("read session file: %w", err)
	}

	var doc sessionDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		return sessionDocument{}, fmt.Errorf("%w: decode session file: %w", ErrCorruptedSession, err)
	}
	return doc, nil
}

// write replaces the file atomically through a temp file in the same
// directory.
func (f *fileTokenStore) write(doc sessionDocument) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}

	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (f *fileTokenStore) seal(token string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	gcm, err := f.cipher(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	blob := append(salt, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(token), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (f *fileTokenStore) open(value string) (string, error) {
	if len(f.secret) == 0 {
		return "", errors.New("token is sealed but no secret is configured")
	}

	blob, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", err
	}
	if len(blob) < saltLen {
		return "", errors.New("sealed token is too short")
	}

	gcm, err := f.cipher(blob[:saltLen])
	if err != nil {
		return "", err
	}

	rest := blob[saltLen:]
	if len(rest) < gcm.NonceSize() {
		return "", errors.New("sealed token is too short")
	}

	plain, err := gcm.Open(nil, rest[:gcm.NonceSize()], rest[gcm.NonceSize():], nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func (f *fileTokenStore) cipher(salt []byte) (cipher.AEAD, error) {
	if f.derivedKey == nil || f.derivedSalt != string(salt) {
		f.derivedKey = argon2.IDKey(f.secret, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
		f.derivedSalt = string(salt)
	}

	block, err := aes.NewCipher(f.derivedKey)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
