package scripts

import (
	"PortfolioBackend/internal/repository/postgres"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/nfnt/resize"
	"k8s.io/klog/v2"
)

const (
	thumbSuffix = "_thumb"
	ThumbWidth  = 480
)

// MakeThumbnail writes a copy of inputPath scaled to width, keeping the
// aspect ratio. Only jpeg and png are supported.
func MakeThumbnail(inputPath, outputPath string, width uint) error {
	klog.V(1).Infof("thumbnail: %s -> %s", inputPath, outputPath)
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	if format != "jpeg" && format != "png" {
		return fmt.Errorf("unsupported format %q for file: %s", format, inputPath)
	}

	m := resize.Resize(width, 0, img, resize.Lanczos3)

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if format == "jpeg" {
		return jpeg.Encode(out, m, &jpeg.Options{Quality: 85})
	}
	return png.Encode(out, m)
}

// TitleFromName turns "coastline_at-dawn" into "Coastline At Dawn".
func TitleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return name
	}
	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

func isPhoto(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// ImportPhotos syncs the photos table with dir: rows whose files vanished are
// deleted, missing thumbnails are generated and every photo is upserted in
// file name order. urlPrefix is the public path dir is served under.
func ImportPhotos(ctx context.Context, repo *postgres.PhotoRepository, dir, urlPrefix string) error {
	klog.Infof("import: step 1, checking stored photos still exist")
	paths, err := repo.ListPaths(ctx)
	if err != nil {
		return fmt.Errorf("list paths: %w", err)
	}

	var idsToDelete []int
	for id, p := range paths {
		local := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(p, urlPrefix)))
		if _, err := os.Stat(local); os.IsNotExist(err) {
			klog.Infof("import: marking id %d (%s) for deletion", id, p)
			idsToDelete = append(idsToDelete, id)
		} else if err != nil {
			klog.Warningf("import: stat %s: %v", local, err)
		}
	}

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := repo.DeleteByIDs(ctx, tx, idsToDelete); err != nil {
		return err
	}

	klog.Infof("import: step 2, adding photos from %s", dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	order := 0
	for _, e := range entries {
		if e.IsDir() || !isPhoto(e.Name()) {
			continue
		}
		ext := filepath.Ext(e.Name())
		name := strings.TrimSuffix(e.Name(), ext)
		if strings.HasSuffix(name, thumbSuffix) {
			continue
		}

		thumbFile := name + thumbSuffix + ext
		if _, err := os.Stat(filepath.Join(dir, thumbFile)); os.IsNotExist(err) {
			if err := MakeThumbnail(filepath.Join(dir, e.Name()), filepath.Join(dir, thumbFile), ThumbWidth); err != nil {
				return fmt.Errorf("thumbnail: %w", err)
			}
		}

		src := path.Join(urlPrefix, e.Name())
		thumb := path.Join(urlPrefix, thumbFile)
		if err := repo.Upsert(ctx, tx, name, TitleFromName(name), src, thumb, order); err != nil {
			return err
		}
		klog.V(1).Infof("import: photo [%s] processed", name)
		order++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	klog.Infof("import: %d photos in catalog", order)
	return nil
}
