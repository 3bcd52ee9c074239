package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const DefaultSampleRate = beep.SampleRate(44100)

type beepVoice struct {
	ctrl   *beep.Ctrl
	stream beep.StreamSeeker
}

// BeepBackend decodes WAV clips into memory and plays them through one
// beep mixer. Once opened the mixer is fed to the speaker, and every mixer
// change happens under the speaker lock.
type BeepBackend struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	buffers    map[uint64]*beep.Buffer
	volumes    map[uint64]float32
	voices     map[uint64]beepVoice
	nextID     uint64
	opened     bool
}

func NewBeepBackend(sampleRate beep.SampleRate) *BeepBackend {
	return &BeepBackend{
		sampleRate: sampleRate,
		mixer:      &beep.Mixer{},
		buffers:    make(map[uint64]*beep.Buffer),
		volumes:    make(map[uint64]float32),
		voices:     make(map[uint64]beepVoice),
		nextID:     1,
	}
}

// Open starts the speaker with a 50ms buffer.
func (b *BeepBackend) Open() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.opened {
		return nil
	}
	if err := speaker.Init(b.sampleRate, b.sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.opened = true
	return nil
}

// Mixer exposes the output stream, for recording or tests.
func (b *BeepBackend) Mixer() beep.Streamer {
	return b.mixer
}

func (b *BeepBackend) Load(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("open clip: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return Clip{}, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != b.sampleRate {
		source = beep.Resample(4, format.SampleRate, b.sampleRate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: b.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(source)
	if err := streamer.Err(); err != nil {
		return Clip{}, fmt.Errorf("read %s: %w", path, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.buffers[id] = buf
	b.volumes[id] = 1
	return Clip{ID: id, Path: path}, nil
}

// Play restarts c from the beginning.
func (b *BeepBackend) Play(c Clip) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, ok := b.buffers[c.ID]
	if !ok {
		return
	}

	b.lock()
	defer b.unlock()

	b.stopVoice(c.ID)
	stream := buf.Streamer(0, buf.Len())
	ctrl := &beep.Ctrl{Streamer: stream}
	b.voices[c.ID] = beepVoice{ctrl: ctrl, stream: stream}
	b.mixer.Add(&effects.Gain{Streamer: ctrl, Gain: float64(b.volumes[c.ID]) - 1})
}

func (b *BeepBackend) Stop(c Clip) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lock()
	defer b.unlock()
	b.stopVoice(c.ID)
}

// stopVoice detaches the voice's stream; the mixer drops it on the next pull.
func (b *BeepBackend) stopVoice(id uint64) {
	if v, ok := b.voices[id]; ok {
		v.ctrl.Streamer = nil
		delete(b.voices, id)
	}
}

func (b *BeepBackend) IsPlaying(c Clip) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lock()
	defer b.unlock()

	v, ok := b.voices[c.ID]
	if !ok {
		return false
	}
	return v.stream.Position() < v.stream.Len()
}

// SetVolume applies from the next Play.
func (b *BeepBackend) SetVolume(c Clip, volume float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.buffers[c.ID]; ok {
		b.volumes[c.ID] = volume
	}
}

func (b *BeepBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lock()
	b.mixer.Clear()
	b.voices = make(map[uint64]beepVoice)
	b.unlock()

	// The speaker has no reliable shutdown; dropping its streamers silences it.
	if b.opened {
		speaker.Clear()
		b.opened = false
	}
	return nil
}

func (b *BeepBackend) lock() {
	if b.opened {
		speaker.Lock()
	}
}

func (b *BeepBackend) unlock() {
	if b.opened {
		speaker.Unlock()
	}
}
