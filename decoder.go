package digivoice

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/srsampson/DigiVoice/internal/amp"
	"github.com/srsampson/DigiVoice/internal/fft"
	"github.com/srsampson/DigiVoice/internal/quant"
	"github.com/srsampson/DigiVoice/internal/rand"
	"github.com/srsampson/DigiVoice/internal/sine"
)

// Decoder reconstructs 320-sample (40ms) PCM frames from four 16-bit index
// words. A Decoder carries envelope/pitch/voicing interpolation history and
// the overlap-add synthesis tail across calls and is not safe for
// concurrent use; create one Decoder per stream.
type Decoder struct {
	coder *amp.Coder
	synth *sine.Synthesizer
	rng   *rand.Source
	log   *log.Logger
}

// NewDecoder allocates the FFT plans and interpolation state a Decoder
// needs. See NewEncoder for the ErrResourceInit failure path.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg := newConfig(opts)
	logger := cfg.logger.With("stream", uuid.New().String())

	synthPlan, err := fft.NewPlan(analysisFFTSize)
	if err != nil {
		return nil, fmt.Errorf("%w: synthesis fft: %v", ErrResourceInit, err)
	}
	synth, err := sine.NewSynthesizer(synthPlan)
	if err != nil {
		return nil, fmt.Errorf("%w: synthesizer: %v", ErrResourceInit, err)
	}

	phasePlan, err := fft.NewPlan(phaseFFTSize)
	if err != nil {
		return nil, fmt.Errorf("%w: phase fft: %v", ErrResourceInit, err)
	}
	phase, err := sine.NewPhaseSynth(phasePlan)
	if err != nil {
		return nil, fmt.Errorf("%w: phase synth: %v", ErrResourceInit, err)
	}

	logger.Debug("decoder initialized")
	return &Decoder{
		coder: amp.New(cfg.tables, phase),
		synth: synth,
		rng:   rand.New(),
		log:   logger,
	}, nil
}

// Close releases the Decoder. See Encoder.Close.
func (d *Decoder) Close() error {
	d.log.Debug("decoder closed")
	return nil
}

// Decode reconstructs a 320-sample (40ms) PCM frame from the four 16-bit
// wire words in indices, writing it into pcm. Decode never fails.
func (d *Decoder) Decode(pcm *[320]int16, indices *[4]uint16) {
	models := d.coder.DecodeFrame(*indices)

	for i := 0; i < subFramesPerPacket; i++ {
		d.synth.PhaseSynthZeroOrder(models[i], d.rng)
		d.synth.Postfilter(models[i], d.rng)
		sub := d.synth.Synthesize(models[i])
		copy(pcm[i*subFrameSamples:(i+1)*subFrameSamples], sub)
	}
}

// DecodeEnergy decodes a packet's quantized frame energy as a linear
// power value, without performing a full Decode. An unvoiced frame (pitch
// index 0) lowers the reported energy by a further 10dB, matching the
// original codec's codec_get_energy.
func (d *Decoder) DecodeEnergy(indices *[4]uint16) float32 {
	energyIdx := maskedWireValue(indices[2])
	pitchIdx := maskedWireValue(indices[3])

	mean := quant.DecodeEnergy(energyIdx) - 10.0
	if pitchIdx == 0 {
		mean -= 10.0
	}
	return float32(math.Pow(10.0, float64(mean)/10.0))
}

func maskedWireValue(idx uint16) int {
	bits := idx >> 12
	mask := uint16((1 << bits) - 1)
	return int(idx & mask)
}
