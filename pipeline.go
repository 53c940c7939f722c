package bmpdump

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bitmapkit/bmpdump/bmp"
)

func (m *BMPDump) findBitmaps(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), ".bmp") {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (m *BMPDump) fileWorker(ctx context.Context, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			f, err := os.Open(file)
			if err != nil {
				errc <- err
				return
			}
			c, err := bmp.DecodeConfig(f)
			f.Close()
			if err != nil {
				// Not a bitmap this tool can read; note it and move on
				m.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			hash, err := hashFile(file)
			if err != nil {
				errc <- err
				return
			}

			if err := m.db.Upsert(file, hash, c); err != nil {
				errc <- err
				return
			}

			m.logger.Printf("Cataloged \"%s\", %dx%d at %d bpp\n", file, c.InfoHeader.Width, c.InfoHeader.Height, c.InfoHeader.BitsPerPixel)
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the directory tree rooted at path, decodes the headers of
// every .bmp file found and records them in the catalog. Files the
// decoder rejects are logged and skipped; everything else that fails
// aborts the scan.
func (m *BMPDump) Scan(path string, workers int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if workers < 1 {
		workers = 1
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := m.findBitmaps(ctx, dir)
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errcList = append(errcList, m.fileWorker(ctx, files))
	}

	return waitForPipeline(errcList...)
}
