// Package file reads the photo catalog from a YAML document:
//
//	photos:
//	  - id: 1
//	    src: /static/photos/coastline.jpg
//	    title: Coastline at Dawn
package file

import (
	"PortfolioBackend/internal/model"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Photos []model.Photo `yaml:"photos"`
}

type PhotoRepository struct {
	path string
}

func NewPhotoRepository(path string) *PhotoRepository {
	return &PhotoRepository{path: path}
}

func (r *PhotoRepository) Path() string {
	return r.path
}

func (r *PhotoRepository) ListPhotos(ctx context.Context) ([]model.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", r.path, err)
	}
	return doc.Photos, nil
}
