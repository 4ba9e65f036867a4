package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rustyeddy/tradedash/journal"
)

// EntriesKey is the key the entry collection is stored under.
const EntriesKey = "journal.entries"

// KV is a minimal key-value store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FileKV keeps all keys in one JSON object on disk. Writes go to a temp file
// that is renamed over the original.
type FileKV struct {
	path string
	mu   sync.Mutex
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.read()
	if err != nil {
		return err
	}
	m[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", f.path, err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}

	tmp := f.path + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, f.path)
}

func (f *FileKV) read() (map[string]json.RawMessage, error) {
	m := map[string]json.RawMessage{}
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return m, nil
}

// KVRepository stores the entry collection as a JSON array under one key.
type KVRepository struct {
	kv  KV
	key string
}

func NewKVRepository(kv KV, key string) *KVRepository {
	return &KVRepository{kv: kv, key: key}
}

func (r *KVRepository) Load(ctx context.Context) ([]journal.Entry, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil || !ok {
		return nil, err
	}
	var entries []journal.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	return entries, nil
}

func (r *KVRepository) Save(ctx context.Context, entries []journal.Entry) error {
	if entries == nil {
		entries = []journal.Entry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	return r.kv.Set(ctx, r.key, raw)
}

func (r *KVRepository) Close() error {
	return nil
}
