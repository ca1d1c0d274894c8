// Package confstore persists configuration documents as one YAML value per
// key under <root>/<namespace>/v<version>/<key> and notifies subscribers when
// those files change.
//
// Documents are plain structs whose fields carry a `config:"key"` tag. Loading
// is best effort: a key that is missing keeps the document's default value and
// a key that fails to decode is reported without aborting the rest.
package confstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound       = errors.New("config key not found")
	ErrInvalidVersion = errors.New("config version must be positive")
)

// KeyError reports a key that exists but could not be read or decoded.
type KeyError struct {
	Namespace string
	Key       string
	Err       error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: key %q: %v", e.Namespace, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// DefaultRoot is the directory the desktop keeps its configuration in.
func DefaultRoot() string {
	return filepath.Join(xdg.ConfigHome, "cosmic")
}

// Store is a handle on a configuration root directory.
type Store struct {
	root string
}

// Open returns a store rooted at root. Directories are created lazily, on the
// first write or subscription.
func Open(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("config root is empty")
	}
	return &Store{root: root}, nil
}

// Root returns the directory the store was opened on.
func (s *Store) Root() string {
	return s.root
}

// Namespace is one versioned configuration document.
type Namespace struct {
	name    string
	version uint64
	dir     string
}

// Namespace returns a handle on the directory holding the given document
// version without touching the filesystem. Each version has its own
// directory, so a schema bump starts from defaults.
func (s *Store) Namespace(name string, version uint64) (*Namespace, error) {
	if version == 0 {
		return nil, fmt.Errorf("namespace %s: %w", name, ErrInvalidVersion)
	}
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid namespace %q", name)
	}
	dir := filepath.Join(s.root, name, fmt.Sprintf("v%d", version))
	return &Namespace{name: name, version: version, dir: dir}, nil
}

func (n *Namespace) ensureDir() error {
	if err := os.MkdirAll(n.dir, 0o755); err != nil {
		return fmt.Errorf("create namespace %s: %w", n.name, err)
	}
	return nil
}

func (n *Namespace) Name() string    { return n.name }
func (n *Namespace) Version() uint64 { return n.version }
func (n *Namespace) Dir() string     { return n.dir }

func (n *Namespace) keyPath(key string) string {
	return filepath.Join(n.dir, key)
}

// Get decodes a single key into out. A key whose namespace directory does not
// exist yet is not found.
func (n *Namespace) Get(key string, out any) error {
	data, err := os.ReadFile(n.keyPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s/%s: %w", n.name, key, ErrNotFound)
	}
	if err != nil {
		return &KeyError{Namespace: n.name, Key: key, Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &KeyError{Namespace: n.name, Key: key, Err: err}
	}
	return nil
}

// Set encodes value and replaces the key file atomically.
func (n *Namespace) Set(key string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return &KeyError{Namespace: n.name, Key: key, Err: err}
	}
	if err := n.ensureDir(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(n.dir, "."+key+".*")
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", n.name, key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s/%s: %w", n.name, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s/%s: %w", n.name, key, err)
	}
	if err := os.Rename(tmp.Name(), n.keyPath(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s/%s: %w", n.name, key, err)
	}
	return nil
}

// Load fills the tagged fields of doc, which must be a pointer to a struct.
// Missing keys keep their current value; every other failure is returned and
// the field keeps its current value too.
func (n *Namespace) Load(doc any) []error {
	v := reflect.ValueOf(doc)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return []error{fmt.Errorf("confstore: %T is not a pointer to a struct", doc)}
	}
	elem := v.Elem()
	var errs []error
	for _, field := range documentFields(elem.Type()) {
		fresh := reflect.New(field.typ)
		err := n.Get(field.key, fresh.Interface())
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		elem.Field(field.index).Set(fresh.Elem())
	}
	return errs
}

type documentField struct {
	key   string
	index int
	typ   reflect.Type
}

func documentFields(t reflect.Type) []documentField {
	fields := make([]documentField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := f.Tag.Get("config")
		if key == "" || key == "-" || !f.IsExported() {
			continue
		}
		fields = append(fields, documentField{key: key, index: i, typ: f.Type})
	}
	return fields
}

// Keys lists the config keys declared by a document type.
func Keys(doc any) []string {
	t := reflect.TypeOf(doc)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	fields := documentFields(t)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}
