package cli

import (
	"context"
	"fmt"
	"os"

	"harulog/internal/speech"
)

// fileSource feeds pre-recorded audio files into the speech supervisor.
// Each file is a complete take, so every segment is final.
type fileSource struct {
	files []*os.File
	i     int
}

func newFileSource(paths []string) (*fileSource, error) {
	source := &fileSource{}
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			source.close()
			return nil, fmt.Errorf("failed to open audio file: %w", err)
		}
		source.files = append(source.files, file)
	}
	return source, nil
}

func (s *fileSource) Next(ctx context.Context) (speech.Segment, error) {
	if err := ctx.Err(); err != nil {
		return speech.Segment{}, err
	}
	if s.i >= len(s.files) {
		return speech.Segment{}, speech.ErrDone
	}
	file := s.files[s.i]
	s.i++
	return speech.Segment{Audio: file, Final: true}, nil
}

func (s *fileSource) close() {
	for _, file := range s.files {
		file.Close()
	}
}
