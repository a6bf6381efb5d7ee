package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/aelpxy/atlassnap/internal/constants"
	"github.com/aelpxy/atlassnap/internal/utils"
	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
)

// Catalog is the local record of imported snapshots, persisted as JSON.
type Catalog struct {
	Entries []Entry `json:"snapshots"`
	path    string
}

func DefaultCatalogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".atlassnap", "snapshots.json"), nil
}

// NewCatalog returns a catalog stored at path, or at the default location
// when path is empty. Call Initialize before use.
func NewCatalog(path string) (*Catalog, error) {
	if path == "" {
		var err error
		if path, err = DefaultCatalogPath(); err != nil {
			return nil, err
		}
	}

	return &Catalog{
		Entries: []Entry{},
		path:    path,
	}, nil
}

func (c *Catalog) Path() string { return c.path }

func (c *Catalog) Initialize() error {
	if err := os.MkdirAll(filepath.Dir(c.path), constants.CatalogDirPerm); err != nil {
		return errors.Wrap(err, "failed to create catalog directory")
	}

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read catalog")
	}

	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "failed to parse catalog")
	}
	return nil
}

func (c *Catalog) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal catalog")
	}

	if err := utils.AtomicWriteFile(c.path, data, constants.CatalogFilePerm); err != nil {
		return errors.Wrap(err, "failed to write catalog")
	}
	return nil
}

// Add stores snap under its id, replacing an entry with the same key. A
// snapshot without an id gets a generated key.
func (c *Catalog) Add(snap models.CloudBackupSnapshot, source string) (Entry, error) {
	key := cuid.New()
	if snap.ID != nil && *snap.ID != "" {
		key = *snap.ID
	}

	entry := Entry{
		Key:        key,
		ImportedAt: time.Now().UTC(),
		Source:     source,
		Snapshot:   snap,
	}

	entries := append([]Entry(nil), c.Entries...)
	replaced := false
	for i := range entries {
		if entries[i].Key == key {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	if err := c.commit(entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// commit saves entries and adopts them only once they are on disk.
func (c *Catalog) commit(entries []Entry) error {
	previous := c.Entries
	c.Entries = entries
	if err := c.Save(); err != nil {
		c.Entries = previous
		return err
	}
	return nil
}

func (c *Catalog) Get(key string) (*Entry, error) {
	for i := range c.Entries {
		if c.Entries[i].Key == key {
			return &c.Entries[i], nil
		}
	}
	return nil, errors.Wrap(ErrNotFound, key)
}

// List returns matching entries, newest snapshot first. Snapshots without a
// creation time sort last.
func (c *Catalog) List(f Filter) []Entry {
	var out []Entry
	for _, e := range c.Entries {
		if f.matches(&e.Snapshot) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Snapshot.CreatedAt, out[j].Snapshot.CreatedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	return out
}

func (c *Catalog) Delete(key string) error {
	for i := range c.Entries {
		if c.Entries[i].Key == key {
			entries := make([]Entry, 0, len(c.Entries)-1)
			entries = append(entries, c.Entries[:i]...)
			entries = append(entries, c.Entries[i+1:]...)
			return c.commit(entries)
		}
	}
	return errors.Wrap(ErrNotFound, key)
}

// Prune drops every snapshot that expired at or before now.
func (c *Catalog) Prune(now time.Time) (int, error) {
	var kept []Entry
	for _, e := range c.Entries {
		if !e.Snapshot.Expired(now) {
			kept = append(kept, e)
		}
	}

	removed := len(c.Entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if kept == nil {
		kept = []Entry{}
	}
	if err := c.commit(kept); err != nil {
		return 0, err
	}
	return removed, nil
}
