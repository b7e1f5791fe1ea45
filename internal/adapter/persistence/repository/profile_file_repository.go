package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

const profileFileExt = ".yaml"

// ProfileFileRepository keeps one YAML document per profile under a directory. It backs
// the terminal wizard, where running DynamoDB is not an option.
type ProfileFileRepository struct {
	dir string
	mu  sync.Mutex
}

var _ interfaces.IProfileRepository = (*ProfileFileRepository)(nil)

func NewProfileFileRepository(dir string) (*ProfileFileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile store %s: %w", dir, err)
	}
	return &ProfileFileRepository{dir: dir}, nil
}

// Save follows the DynamoDB repository: the write only happens while the stored status
// equals expected (empty meaning no stored profile), otherwise a zero value is returned.
func (r *ProfileFileRepository) Save(_ context.Context, p entities.Profile, expected entities.ProfileStatus) (entities.Profile, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.Profile{}, errors.New("profile id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.read(r.path(p.ID))
	if err != nil {
		return entities.Profile{}, err
	}
	if stored.ID != "" && stored.ProfileStatus != expected || stored.ID == "" && expected != "" {
		return entities.Profile{}, nil
	}

	if err := r.write(p); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileFileRepository) GetByID(_ context.Context, id string) (entities.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(r.path(id))
}

func (r *ProfileFileRepository) ListByStatus(_ context.Context, status entities.ProfileStatus) ([]entities.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches, err := filepath.Glob(filepath.Join(r.dir, "*"+profileFileExt))
	if err != nil {
		return nil, err
	}
	slices.Sort(matches)

	items := make([]entities.Profile, 0)
	for _, path := range matches {
		p, err := r.read(path)
		if err != nil {
			return nil, err
		}
		if p.ID != "" && p.ProfileStatus == status {
			items = append(items, p)
		}
	}
	return items, nil
}

func (r *ProfileFileRepository) UpdateStatus(_ context.Context, id string, from, to entities.ProfileStatus, note string) (entities.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.read(r.path(id))
	if err != nil || p.ID == "" || p.ProfileStatus != from {
		return entities.Profile{}, err
	}
	p.ProfileStatus = to
	p.ReviewNote = note
	p.UpdatedAt = time.Now().UTC()
	if err := r.write(p); err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

// LoadProfile decodes a single YAML profile, e.g. a seed file handed to the terminal wizard.
func LoadProfile(path string) (entities.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.Profile{}, err
	}
	var p entities.Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return entities.Profile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return p.Normalize(), nil
}

func (r *ProfileFileRepository) path(id string) string {
	return filepath.Join(r.dir, filepath.Base(strings.TrimSpace(id))+profileFileExt)
}

func (r *ProfileFileRepository) read(path string) (entities.Profile, error) {
	p, err := LoadProfile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.Profile{}, nil
	}
	return p, err
}

// write replaces the file atomically.
func (r *ProfileFileRepository) write(p entities.Profile) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(r.dir, ".profile-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(p.ID))
}
