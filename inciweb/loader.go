package inciweb

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// {{{ readBatch

// A structurally broken file is recoverable at file granularity; the
// caller logs and moves on to the next one.
func readBatch(name string, rdr io.Reader) (Batch, error) {
	batch := Batch{Name: name}

	rowReader := NewRowReader(rdr)
	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil {
			return batch, fmt.Errorf("read %s: %v", name, err)
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}

// }}}
// {{{ LoadDir

// LoadDir reads every .csv (or .csv.gz) snapshot file under dir. Files
// that fail to parse are skipped, not fatal.
func LoadDir(dir string) ([]Batch, error) {
	entries,err := os.ReadDir(dir)
	if err != nil { return nil, err }

	batches := []Batch{}
	for _,entry := range entries {
		name := entry.Name()
		if entry.IsDir() { continue }
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".csv.gz") {
			continue
		}

		f,err := os.Open(filepath.Join(dir, name))
		if err != nil {
			log.Printf("inciweb: open %s: %v (skipping)", name, err)
			continue
		}

		var rdr io.Reader = f
		if strings.HasSuffix(name, ".gz") {
			gzRdr,err := gzip.NewReader(f)
			if err != nil {
				log.Printf("inciweb: gzopen %s: %v (skipping)", name, err)
				f.Close()
				continue
			}
			rdr = gzRdr
		}

		batch,err := readBatch(name, rdr)
		f.Close()
		if err != nil {
			log.Printf("inciweb: %v (skipping)", err)
			continue
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

// }}}
// {{{ LoadGCS

// LoadGCS reads snapshot files from a cloud storage bucket instead of
// local disk, for runs that consume a scraper writing straight to GCS.
func LoadGCS(ctx context.Context, bucketName, prefix string) ([]Batch, error) {
	client,err := storage.NewClient(ctx)
	if err != nil { return nil, err }
	defer client.Close()

	bucket := client.Bucket(bucketName)
	q := &storage.Query{Prefix: prefix}

	names := []string{}
	it := bucket.Objects(ctx, q)
	for {
		oa,err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("GCS-Readdir [gs://%s]%s: %v", bucketName, q.Prefix, err)
		}
		if strings.HasSuffix(oa.Name, ".csv") || strings.HasSuffix(oa.Name, ".csv.gz") {
			names = append(names, oa.Name)
		}
	}

	batches := []Batch{}
	for _,name := range names {
		gcsReader,err := bucket.Object(name).NewReader(ctx)
		if err != nil {
			log.Printf("inciweb: GCS-Open %s|%s: %v (skipping)", bucketName, name, err)
			continue
		}

		var rdr io.Reader = gcsReader
		if strings.HasSuffix(name, ".gz") {
			gzRdr,err := gzip.NewReader(gcsReader)
			if err != nil {
				log.Printf("inciweb: GCS-Open+GZ %s|%s: %v (skipping)", bucketName, name, err)
				gcsReader.Close()
				continue
			}
			rdr = gzRdr
		}

		batch,err := readBatch(name, rdr)
		gcsReader.Close()
		if err != nil {
			log.Printf("inciweb: %v (skipping)", err)
			continue
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
