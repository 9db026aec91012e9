package assets

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	blipFrequency = 880.0
	blipSeconds   = 0.06
	blipVolume    = 0.3
)

// BlipPCM synthesises a short decaying sine as 16-bit little-endian stereo
// PCM, the format ebiten's audio players consume.
func BlipPCM(sampleRate int) []byte {
	n := int(math.Round(float64(sampleRate) * blipSeconds))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*blipFrequency*t) * env * blipVolume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// NewBlipPlayer returns a player for the bounce blip on ctx.
func NewBlipPlayer(ctx *audio.Context) *audio.Player {
	return ctx.NewPlayerFromBytes(BlipPCM(ctx.SampleRate()))
}
