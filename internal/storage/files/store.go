// internal/storage/files/store.go
package files

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/storage"

	"github.com/spf13/afero"
)

const cvSubdir = "cvs"

// URLPrefix is the public path under which stored CVs are served.
const URLPrefix = "/uploads/cvs/"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// CVStore keeps uploaded CVs on an afero filesystem rooted at baseDir.
type CVStore struct {
	fs      afero.Fs
	baseDir string
	now     func() time.Time
}

// NewCVStore creates a store rooted at baseDir on the given filesystem.
func NewCVStore(fs afero.Fs, baseDir string) *CVStore {
	return &CVStore{fs: fs, baseDir: baseDir, now: time.Now}
}

// Compile-time check to ensure CVStore implements FileStore
var _ storage.FileStore = (*CVStore)(nil)

// Save writes the file under a timestamped, sanitized name and returns the
// public URL plus the stored file name.
func (s *CVStore) Save(name string, data []byte) (string, string, error) {
	fileName := fmt.Sprintf("%d_%s", s.now().UnixMilli(), unsafeChars.ReplaceAllString(name, "_"))

	dir := filepath.Join(s.baseDir, cvSubdir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating upload directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing cv file: %w", err)
	}
	return URLPrefix + fileName, fileName, nil
}

// Delete removes a stored CV by its file name. The name is reduced to its
// base component so a crafted value cannot reach outside the store.
func (s *CVStore) Delete(fileName string) error {
	fileName = filepath.Base(fileName)
	if fileName == "." || fileName == string(filepath.Separator) {
		return storage.ErrNotFound
	}
	fullPath := filepath.Join(s.baseDir, cvSubdir, fileName)
	exists, err := afero.Exists(s.fs, fullPath)
	if err != nil {
		return fmt.Errorf("checking cv file: %w", err)
	}
	if !exists {
		return storage.ErrNotFound
	}
	if err := s.fs.Remove(fullPath); err != nil {
		return fmt.Errorf("removing cv file: %w", err)
	}
	return nil
}

// Open reads a stored file by its URL-relative path and reports its content
// type. Paths that escape the store root are treated as not found.
func (s *CVStore) Open(relPath string) ([]byte, string, error) {
	cleaned := path.Clean("/" + relPath)
	if strings.Contains(cleaned, "..") {
		return nil, "", storage.ErrNotFound
	}
	full := filepath.Join(s.baseDir, filepath.FromSlash(strings.TrimPrefix(cleaned, "/")))

	data, err := afero.ReadFile(s.fs, full)
	if err != nil {
		return nil, "", storage.ErrNotFound
	}

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(full))]
	if !ok {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}
