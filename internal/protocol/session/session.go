package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/danmuck/eftp/internal/linecode"
	"github.com/danmuck/eftp/internal/logging"
	"github.com/danmuck/eftp/internal/medium"
	"github.com/danmuck/eftp/internal/observability"
	"github.com/danmuck/eftp/internal/protocol/frame"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Line is the transport a session writes encoded frames to and reads them from.
type Line = medium.Line[linecode.Streams]

// FileSystem is the storage boundary used by TransmitFile and ReceiveFile.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// File is one reassembled file.
type File struct {
	Name    string
	Content []byte
}

// Report summarizes one completed transfer.
type Report struct {
	TransferID string `json:"transfer_id"`
	Name       string `json:"name"`
	Bytes      int    `json:"bytes"`
	Segments   int    `json:"segments"`
	StoredAs   string `json:"stored_as,omitempty"`
}

// Session runs file transfers over one line. Calls are serialized so the
// frames of two transfers never interleave on the line.
type Session struct {
	mu     sync.Mutex
	line   Line
	files  FileSystem
	cfg    Config
	logger zerolog.Logger
}

// New creates a session. files may be nil when only in-memory transfers are used.
func New(line Line, files FileSystem, cfg *Config) *Session {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	c.defaults()
	return &Session{
		line:   line,
		files:  files,
		cfg:    c,
		logger: logging.Component("session"),
	}
}

// Transmit sends name and content as a control frame followed by its data
// frames. Nothing reaches the line when the control frame cannot be built.
func (s *Session) Transmit(name string, content []byte) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transmit(name, content)
}

// TransmitFile reads path through the session FileSystem and sends it under
// its base name.
func (s *Session) TransmitFile(path string) (Report, error) {
	if s.files == nil {
		return Report{}, ErrNoFileSystem
	}
	content, err := s.files.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("session: read %s: %w", path, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transmit(filepath.Base(path), content)
}

func (s *Session) transmit(name string, content []byte) (Report, error) {
	report := Report{TransferID: uuid.NewString(), Name: name, Bytes: len(content)}
	logger := s.logger.With().Str("transfer_id", report.TransferID).Str("name", name).Logger()

	if len(content) > s.cfg.MaxFileSize {
		observability.RecordTransfer(observability.DirectionTransmit, 0, 0, false)
		return report, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, len(content), s.cfg.MaxFileSize)
	}
	control, err := frame.BuildControl(name, int64(len(content)))
	if err != nil {
		observability.RecordTransfer(observability.DirectionTransmit, 0, 0, false)
		logger.Warn().Err(err).Msg("control frame rejected")
		return report, err
	}

	segments := frame.Segment(content)
	encoded := make([]linecode.Streams, 0, len(segments)+1)
	encoded = append(encoded, linecode.Encode(control))
	for _, seg := range segments {
		encoded = append(encoded, linecode.Encode(seg.Bytes()))
	}
	for i, streams := range encoded {
		if !s.line.Transmit(streams) {
			observability.RecordFrame("encode", "rejected")
			observability.RecordTransfer(observability.DirectionTransmit, max(0, i-1), 0, false)
			logger.Warn().Int("frame", i+1).Int("frames", len(encoded)).Msg("line refused frame")
			return report, fmt.Errorf("%w: frame %d of %d", ErrLineRejected, i+1, len(encoded))
		}
		observability.RecordFrame("encode", "ok")
	}

	report.Segments = len(segments)
	observability.RecordTransfer(observability.DirectionTransmit, report.Segments, report.Bytes, true)
	logger.Info().Int("bytes", report.Bytes).Int("segments", report.Segments).Msg("file transmitted")
	return report, nil
}

// Receive reads one control frame and the data frames it announces, and
// returns the reassembled file. It returns no file when the control frame
// cannot be received or decoded. When a data frame fails, the frames the
// control frame still announces are taken off the line and dropped.
func (s *Session) Receive() (File, Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receive()
}

// ReceiveFile is Receive followed by storing the content as
// <ReceivedPrefix><name> through the session FileSystem.
func (s *Session) ReceiveFile() (File, Report, error) {
	if s.files == nil {
		return File{}, Report{}, ErrNoFileSystem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	file, report, err := s.receive()
	if err != nil {
		return File{}, report, err
	}
	stored := s.cfg.ReceivedPrefix + file.Name
	if err := s.files.WriteFile(stored, file.Content); err != nil {
		return File{}, report, fmt.Errorf("session: write %s: %w", stored, err)
	}
	report.StoredAs = stored
	s.logger.Info().Str("transfer_id", report.TransferID).Str("stored_as", stored).Msg("file stored")
	return file, report, nil
}

func (s *Session) receive() (File, Report, error) {
	report := Report{TransferID: uuid.NewString()}
	logger := s.logger.With().Str("transfer_id", report.TransferID).Logger()

	raw, err := s.receiveFrame()
	if err != nil {
		observability.RecordTransfer(observability.DirectionReceive, 0, 0, false)
		return File{}, report, fmt.Errorf("%w: %w", ErrControlFrame, err)
	}
	control, err := frame.ParseControl(raw)
	if err != nil {
		observability.RecordTransfer(observability.DirectionReceive, 0, 0, false)
		return File{}, report, fmt.Errorf("%w: %w", ErrControlFrame, err)
	}
	report.Name = control.Name
	if control.Length > s.cfg.MaxFileSize {
		observability.RecordTransfer(observability.DirectionReceive, 0, 0, false)
		return File{}, report, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, control.Length, s.cfg.MaxFileSize)
	}

	count := frame.SegmentCount(control.Length)
	content := make([]byte, 0, control.Length)
	for i := 0; i < count; i++ {
		raw, err := s.receiveFrame()
		if err != nil {
			if !errors.Is(err, medium.ErrNoData) {
				s.discard(count-i-1, logger)
			}
			observability.RecordTransfer(observability.DirectionReceive, i, len(content), false)
			return File{}, report, fmt.Errorf("%w: segment %d of %d: %w", ErrDataFrame, i+1, count, err)
		}
		data, err := frame.ParseData(raw)
		if err != nil {
			s.discard(count-i-1, logger)
			observability.RecordTransfer(observability.DirectionReceive, i, len(content), false)
			return File{}, report, fmt.Errorf("%w: segment %d of %d: %w", ErrDataFrame, i+1, count, err)
		}
		if want := frame.SeqFor(i, count); s.cfg.VerifySequence && data.Seq != want {
			s.discard(count-i-1, logger)
			observability.RecordTransfer(observability.DirectionReceive, i, len(content), false)
			return File{}, report, fmt.Errorf("%w: got seq %d, want %d", ErrSequence, data.Seq, want)
		}
		content = append(content, data.Payload...)
	}
	if len(content) != control.Length {
		observability.RecordTransfer(observability.DirectionReceive, count, len(content), false)
		return File{}, report, fmt.Errorf("%w: got %d bytes, announced %d", ErrLengthMismatch, len(content), control.Length)
	}

	report.Bytes = len(content)
	report.Segments = count
	observability.RecordTransfer(observability.DirectionReceive, count, len(content), true)
	logger.Info().Str("name", control.Name).Int("bytes", report.Bytes).Int("segments", count).Msg("file received")
	return File{Name: control.Name, Content: content}, report, nil
}

// discard drops up to n frames still announced by a failed transfer so the
// next Receive starts at a control frame.
func (s *Session) discard(n int, logger zerolog.Logger) {
	dropped := 0
	for ; dropped < n; dropped++ {
		if _, err := s.line.Receive(); err != nil {
			break
		}
	}
	if dropped > 0 {
		logger.Debug().Int("dropped", dropped).Msg("discarded remaining frames of failed transfer")
	}
}

// TransmitBytes encodes data as one frame and puts it on the line. The
// encoded streams are returned even when the line refuses them.
func (s *Session) TransmitBytes(data []byte) (linecode.Streams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	streams := linecode.Encode(data)
	if !s.line.Transmit(streams) {
		observability.RecordFrame("encode", "rejected")
		return streams, ErrLineRejected
	}
	observability.RecordFrame("encode", "ok")
	return streams, nil
}

// ReceiveBytes takes one frame off the line and decodes it. An empty line
// yields medium.ErrNoData.
func (s *Session) ReceiveBytes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receiveFrame()
}

func (s *Session) receiveFrame() ([]byte, error) {
	streams, err := s.line.Receive()
	if err != nil {
		return nil, err
	}
	data, err := linecode.Decode(streams)
	if err != nil {
		observability.RecordFrame("decode", linecode.Kind(err))
		s.logger.Debug().Err(err).Msg("frame rejected")
		return nil, err
	}
	observability.RecordFrame("decode", "ok")
	return data, nil
}
