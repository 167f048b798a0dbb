package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"

	fw "github.com/skypies/firewatch"
)

// {{{ PublishMatches

// PublishMatches writes the matches as newline-delimited JSON into a
// GCS object, ready for a BigQuery load job. Returns the number of
// records written; if the object already exists it writes nothing, so
// re-runs don't duplicate rows.
func PublishMatches(ctx context.Context, matches []fw.Match, bucketName, filename string) (int, error) {
	client,err := storage.NewClient(ctx)
	if err != nil {
		return 0, fmt.Errorf("PublishMatches: storage client: %v", err)
	}
	defer client.Close()

	obj := client.Bucket(bucketName).Object(filename)
	if _,err := obj.Attrs(ctx); err == nil {
		return 0, nil
	} else if err != storage.ErrObjectNotExist {
		return 0, err
	}

	gcsWriter := obj.NewWriter(ctx)
	gcsWriter.ContentType = "application/json"
	encoder := json.NewEncoder(gcsWriter)

	n := 0
	for _,m := range matches {
		if err := encoder.Encode(m.ForBigQuery()); err != nil {
			return 0, err
		}
		n++
	}

	if err := gcsWriter.Close(); err != nil {
		return 0, err
	}
	return n, nil
}

// }}}
// {{{ SubmitLoadJob

// https://cloud.google.com/bigquery/docs/loading-data-cloud-storage#bigquery-import-gcs-file-go
func SubmitLoadJob(ctx context.Context, project, dataset, tablename, bucketName, filename string) error {
	client,err := bigquery.NewClient(ctx, project)
	if err != nil {
		return fmt.Errorf("Creating bigquery client: %v", err)
	}
	defer client.Close()
	destTable := client.Dataset(dataset).Table(tablename)

	gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s", bucketName, filename))
	gcsSrc.SourceFormat = bigquery.JSON
	gcsSrc.AllowJaggedRows = true

	loader := destTable.LoaderFrom(gcsSrc)
	loader.CreateDisposition = bigquery.CreateNever
	job,err := loader.Run(ctx)
	if err != nil {
		return fmt.Errorf("Submission of load job: %v", err)
	}

	for {
		status,err := job.Status(ctx)
		if err != nil {
			return fmt.Errorf("Load job status: %v", err)
		}
		if status.Done() {
			if status.Err() != nil {
				return fmt.Errorf("Load job failed: %v", status.Err())
			}
			return nil
		}
		time.Sleep(5 * time.Second)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
