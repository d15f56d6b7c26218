package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	pcm "github.com/decker502/neontrail/internal/audio"
)

const beepRate = beep.SampleRate(SampleRate)

// BeepBlip 使用 gopxl/beep 扬声器播放音效
//
// speaker 在自己的 goroutine 中拉取数据，mixer 的修改需要 speaker.Lock。
type BeepBlip struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeepBlip 创建未初始化的音效播放器
func NewBeepBlip() *BeepBlip {
	return &BeepBlip{mixer: &beep.Mixer{}}
}

// Initialize 初始化扬声器，重复调用无副作用
// 没有音频设备时返回错误，调用方应忽略并继续运行
func (b *BeepBlip) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(beepRate, beepRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// PlayBurst 把一次音效加入混音器，未初始化时静默忽略
func (b *BeepBlip) PlayBurst(x, y float64, count int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	streamer := &effects.Volume{
		Streamer: NewChirpGenerator(pcm.DefaultChirp, beepRate),
		Base:     2,
		Volume:   volumeExponent(burstVolume(count)),
	}
	speaker.Lock()
	b.mixer.Add(streamer)
	speaker.Unlock()
}

// Close 清空混音器
func (b *BeepBlip) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// ChirpGenerator 把 pcm.Chirp 转换为 beep.Streamer，播放完毕后结束
type ChirpGenerator struct {
	chirp pcm.Chirp
	sr    beep.SampleRate
	pos   int
	total int
}

// NewChirpGenerator creates a streamer for one chirp.
func NewChirpGenerator(c pcm.Chirp, sr beep.SampleRate) *ChirpGenerator {
	return &ChirpGenerator{chirp: c, sr: sr, total: c.Samples(int(sr))}
}

// Stream fills samples with the next part of the chirp and reports false once it has ended.
func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		sample := g.chirp.SampleAt(g.pos, int(g.sr))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil: synthesis cannot fail.
func (g *ChirpGenerator) Err() error {
	return nil
}
