package ingest

import (
	"fmt"
	"sync"

	"github.com/labstack/gommon/log"

	"profitlens/internal"
)

// LoadAll parses every file concurrently and concatenates the results in
// argument order once the last parse reports in, so the merged sequence is
// deterministic even though parses finish out of order. Rows are never
// de-duplicated: one order can legitimately settle across several files.
func LoadAll(paths []string, opts Options) ([]internal.RawRow, error) {
	results := make([][]internal.RawRow, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i], errs[i] = ReadRows(path, opts)
		}(i, path)
	}
	wg.Wait()

	merged := []internal.RawRow{}
	for i, path := range paths {
		if errs[i] != nil {
			return nil, fmt.Errorf("read %s: %w", path, errs[i])
		}
		log.Infof("[Ingest] loaded %d rows from %s", len(results[i]), path)
		merged = append(merged, results[i]...)
	}
	return merged, nil
}
