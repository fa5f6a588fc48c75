package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const lockName = ".lock"

// FileStore keeps one protobuf-encoded Int64Value per key under dir.
// Reads and writes take an flock on dir/.lock so several processes can
// share one directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrPersistenceUnavailable, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Get(key string) (int64, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return 0, false, err
	}

	unlock, err := lockDir(s.dir, false)
	if err != nil {
		return 0, false, unavailable("lock", key, err)
	}
	defer unlock()

	return readValue(path, key)
}

func (s *FileStore) Set(key string, value int64) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	unlock, err := lockDir(s.dir, true)
	if err != nil {
		return unavailable("lock", key, err)
	}
	defer unlock()

	return s.writeValue(path, key, value)
}

func (s *FileStore) Raise(key string, value int64) (int64, error) {
	path, err := s.path(key)
	if err != nil {
		return value, err
	}

	unlock, err := lockDir(s.dir, true)
	if err != nil {
		return value, unavailable("lock", key, err)
	}
	defer unlock()

	current, ok, err := readValue(path, key)
	if err != nil {
		return value, err
	}
	if ok && current >= value {
		return current, nil
	}
	if err := s.writeValue(path, key, value); err != nil {
		return value, err
	}
	return value, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || key == lockName || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+".pb"), nil
}

func readValue(path, key string) (int64, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, unavailable("read", key, err)
	}

	msg := &wrapperspb.Int64Value{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return 0, false, unavailable("decode", key, err)
	}
	return msg.GetValue(), true, nil
}

// writeValue replaces the file through a rename so readers never see a
// partial write.
func (s *FileStore) writeValue(path, key string, value int64) error {
	data, err := proto.Marshal(wrapperspb.Int64(value))
	if err != nil {
		return unavailable("encode", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return unavailable("write", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return unavailable("write", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return unavailable("write", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return unavailable("rename", key, err)
	}
	return nil
}
