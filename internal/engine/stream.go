package engine

import "io"

// adapts an already-materialized segment list to the Stream interface, for
// backends whose APIs return the whole response at once
type sliceStream struct {
	segments []Segment
	pos      int
}

func NewSliceStream(segments []Segment) Stream {
	return &sliceStream{segments: segments}
}

func (s *sliceStream) Next() (Segment, error) {
	if s.pos >= len(s.segments) {
		return Segment{}, io.EOF
	}
	seg := s.segments[s.pos]
	s.pos++
	return seg, nil
}

func (s *sliceStream) Close() error {
	return nil
}
