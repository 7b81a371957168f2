package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rickgao/btn-backfill/internal/model"
)

// rowTimeLayout matches the original archive's candle timestamp format.
const rowTimeLayout = "2006-01-02T15:04:05"

// File is the append-only CSV sink: one file per run, header row first,
// flushed after every data row so an interrupted run keeps everything
// written so far.
type File struct {
	f *os.File
	w *csv.Writer
}

// NewCandleFile creates <year>_ticker.csv in dir with its header row.
func NewCandleFile(dir string, year int) (*File, error) {
	return newFile(
		filepath.Join(dir, fmt.Sprintf("%d_ticker.csv", year)),
		[]string{"timestamp", "price"},
	)
}

// NewTweetFile creates <year>_tweets.csv in dir with its header row.
func NewTweetFile(dir string, year int) (*File, error) {
	return newFile(
		filepath.Join(dir, fmt.Sprintf("%d_tweets.csv", year)),
		[]string{"tweetId", "timestamp", "text"},
	)
}

func newFile(path string, header []string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flush header: %w", err)
	}

	return &File{f: f, w: w}, nil
}

// WriteCandle appends one candle row.
func (s *File) WriteCandle(p model.PricePoint) error {
	return s.writeRow([]string{
		p.Timestamp.UTC().Format(rowTimeLayout),
		strconv.FormatFloat(p.Price, 'f', -1, 64),
	})
}

// WriteTweet appends one tweet row.
func (s *File) WriteTweet(t model.Tweet) error {
	return s.writeRow([]string{t.ID, t.CreatedAt, t.Text})
}

func (s *File) writeRow(row []string) error {
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("flush row: %w", err)
	}
	return nil
}

// Name returns the file's path.
func (s *File) Name() string {
	return s.f.Name()
}

// Close flushes and closes the file.
func (s *File) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return fmt.Errorf("flush: %w", err)
	}
	return s.f.Close()
}
