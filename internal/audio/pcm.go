// Package audio synthesizes the short chirp played on click bursts.
//
// The waveform is exposed twice: as a sample function for streaming
// backends (gopxl/beep) and as a 16-bit PCM stream for Ebitengine's
// audio.Player.
package audio

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Chirp describes a sine sweep with an exponential decay envelope.
type Chirp struct {
	StartFreq float64       // Hz
	EndFreq   float64       // Hz
	Duration  time.Duration // total length
	Volume    float64       // peak amplitude in [0, 1]
}

// DefaultChirp is the burst sound: a quick downward sweep.
var DefaultChirp = Chirp{
	StartFreq: 1320,
	EndFreq:   660,
	Duration:  90 * time.Millisecond,
	Volume:    0.3,
}

// Samples returns how many frames the chirp lasts at sampleRate.
func (c Chirp) Samples(sampleRate int) int {
	return int(math.Round(c.Duration.Seconds() * float64(sampleRate)))
}

// SampleAt returns the amplitude of frame i in [-Volume, Volume].
//
// Frequency glides linearly from StartFreq to EndFreq; the phase is the
// integral of that glide so the sweep has no clicks.
func (c Chirp) SampleAt(i, sampleRate int) float64 {
	total := c.Samples(sampleRate)
	if total <= 0 || i < 0 || i >= total {
		return 0
	}
	t := float64(i) / float64(sampleRate)
	d := c.Duration.Seconds()

	k := (c.EndFreq - c.StartFreq) / d
	phase := 2 * math.Pi * (c.StartFreq*t + 0.5*k*t*t)

	// 5ms attack, then exponential decay
	attack := math.Min(t/0.005, 1)
	decay := math.Exp(-t * 5 / d)
	return c.Volume * attack * decay * math.Sin(phase)
}

// PCMStream is an in-memory 16-bit little-endian stereo stream.
type PCMStream struct {
	data       []byte // PCM data (16-bit signed, interleaved L/R)
	sampleRate int64
	offset     int64
}

// Synthesize renders the chirp into a stereo PCM stream.
func Synthesize(c Chirp, sampleRate int) (*PCMStream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	n := c.Samples(sampleRate)
	if n <= 0 {
		return nil, fmt.Errorf("chirp too short: %v at %d Hz", c.Duration, sampleRate)
	}

	data := make([]byte, n*4) // 2 channels × 2 bytes
	for i := 0; i < n; i++ {
		v := int16(math.Round(clampUnit(c.SampleAt(i, sampleRate)) * math.MaxInt16))
		// Write as little-endian 16-bit signed integer, same value on both channels
		data[i*4] = byte(v)
		data[i*4+1] = byte(v >> 8)
		data[i*4+2] = byte(v)
		data[i*4+3] = byte(v >> 8)
	}

	return &PCMStream{data: data, sampleRate: int64(sampleRate)}, nil
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Bytes returns the raw PCM data.
func (s *PCMStream) Bytes() []byte {
	return s.data
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the stream in bytes.
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate of the stream in Hz.
func (s *PCMStream) SampleRate() int64 {
	return s.sampleRate
}
