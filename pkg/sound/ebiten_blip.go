package sound

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	pcm "github.com/decker502/neontrail/internal/audio"
)

// maxEbitenVoices 同时播放的音效上限，超过时丢弃新的请求
const maxEbitenVoices = 8

// EbitenBlip 使用 Ebitengine audio 播放预先合成的 PCM 数据
type EbitenBlip struct {
	context *audio.Context
	data    []byte
	voices  []*audio.Player
}

// NewEbitenBlip 合成音效数据
//
// 参数：
//   - ctx: 宿主创建的 audio.Context（进程内只能有一个），采样率须为 SampleRate
func NewEbitenBlip(ctx *audio.Context) (*EbitenBlip, error) {
	if ctx == nil {
		return nil, fmt.Errorf("audio context is nil")
	}
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context sample rate %d, want %d", ctx.SampleRate(), SampleRate)
	}
	stream, err := pcm.Synthesize(pcm.DefaultChirp, SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize burst sound: %w", err)
	}
	log.Printf("[Sound] Ebitengine blip ready (%d bytes PCM)", stream.Length())
	return &EbitenBlip{context: ctx, data: stream.Bytes()}, nil
}

// PlayBurst 播放一次音效
func (b *EbitenBlip) PlayBurst(x, y float64, count int) {
	b.reap()
	if len(b.voices) >= maxEbitenVoices {
		return
	}

	player := b.context.NewPlayerFromBytes(b.data)
	player.SetVolume(burstVolume(count))
	player.Play()
	b.voices = append(b.voices, player)
}

// reap 关闭已经播放完的播放器
func (b *EbitenBlip) reap() {
	alive := b.voices[:0]
	for _, p := range b.voices {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[Sound] Warning: failed to close player: %v", err)
		}
	}
	b.voices = alive
}

// Close 停止并释放所有播放器
func (b *EbitenBlip) Close() {
	for _, p := range b.voices {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Printf("[Sound] Warning: failed to close player: %v", err)
		}
	}
	b.voices = nil
}
