package extract

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile names the structural markers of an article page.
type Profile struct {
	Title          string   `yaml:"title"`
	Time           string   `yaml:"time"`
	Content        string   `yaml:"content"`
	Paragraph      string   `yaml:"paragraph"`
	ExcludeMarkers []string `yaml:"excludeMarkers"`
	DropEmpty      bool     `yaml:"dropEmpty"`
}

// DefaultProfile matches udn.com article pages.
func DefaultProfile() Profile {
	return Profile{
		Title:          "h1.article-content__title",
		Time:           "time.article-content__time",
		Content:        "section.article-content__editor",
		Paragraph:      "p",
		ExcludeMarkers: []string{"▪"},
		DropEmpty:      true,
	}
}

func (p Profile) Validate() error {
	var errs []error
	for name, selector := range map[string]string{
		"title":     p.Title,
		"time":      p.Time,
		"content":   p.Content,
		"paragraph": p.Paragraph,
	} {
		if selector == "" {
			errs = append(errs, fmt.Errorf("profile selector %q is empty", name))
		}
	}
	return errors.Join(errs...)
}

type ProfileLoader struct {
	reader io.Reader
}

func NewProfileLoader(reader io.Reader) *ProfileLoader {
	return &ProfileLoader{reader: reader}
}

// Load decodes a profile on top of DefaultProfile, so a file may override only some markers.
func (pl *ProfileLoader) Load() (*Profile, error) {
	profile := DefaultProfile()
	if err := yaml.NewDecoder(pl.reader).Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode extractor profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// LoadProfileFile returns DefaultProfile when path is empty.
func LoadProfileFile(path string) (*Profile, error) {
	if path == "" {
		profile := DefaultProfile()
		return &profile, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open extractor profile: %w", err)
	}
	defer f.Close()

	return NewProfileLoader(f).Load()
}
