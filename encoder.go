package digivoice

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/srsampson/DigiVoice/internal/amp"
	"github.com/srsampson/DigiVoice/internal/fft"
	"github.com/srsampson/DigiVoice/internal/model"
	"github.com/srsampson/DigiVoice/internal/sine"
)

const (
	// subFrameSamples is the number of PCM samples the analyzer/synthesizer
	// consume or produce per 10ms harmonic model (N_SAMP in the original).
	subFrameSamples = 80
	// subFramesPerPacket is the number of 10ms sub-frames multiplexed into
	// one 40ms wire packet (N_MODELS in the original).
	subFramesPerPacket = 4
	// samplesPerFrame is subFrameSamples * subFramesPerPacket.
	samplesPerFrame = subFrameSamples * subFramesPerPacket
	// indexesPerFrame is the number of 16-bit wire words per packet.
	indexesPerFrame = 4

	analysisFFTSize = 512
	phaseFFTSize    = 128
)

// IndexesPerFrame returns the number of 16-bit index words per 40ms packet.
func IndexesPerFrame() int { return indexesPerFrame }

// SamplesPerFrame returns the number of PCM samples per 40ms packet.
func SamplesPerFrame() int { return samplesPerFrame }

// Encoder turns 320-sample (40ms) PCM frames into four 16-bit index words.
// An Encoder carries pitch-tracking and envelope history across calls and
// is not safe for concurrent use; create one Encoder per stream.
type Encoder struct {
	analyzer *sine.Analyzer
	coder    *amp.Coder
	log      *log.Logger
}

// NewEncoder allocates the FFT plans and VQ search state an Encoder needs.
// The only failure path is FFT plan allocation (ErrResourceInit); with this
// codec's fixed transform sizes it cannot occur in practice, but the check
// exists because the underlying plan allocator has it.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := newConfig(opts)
	logger := cfg.logger.With("stream", uuid.New().String())

	analysisPlan, err := fft.NewPlan(analysisFFTSize)
	if err != nil {
		return nil, fmt.Errorf("%w: analysis fft: %v", ErrResourceInit, err)
	}
	analyzer, err := sine.NewAnalyzer(analysisPlan)
	if err != nil {
		return nil, fmt.Errorf("%w: analyzer: %v", ErrResourceInit, err)
	}

	phasePlan, err := fft.NewPlan(phaseFFTSize)
	if err != nil {
		return nil, fmt.Errorf("%w: phase fft: %v", ErrResourceInit, err)
	}
	phase, err := sine.NewPhaseSynth(phasePlan)
	if err != nil {
		return nil, fmt.Errorf("%w: phase synth: %v", ErrResourceInit, err)
	}

	logger.Debug("encoder initialized")
	return &Encoder{
		analyzer: analyzer,
		coder:    amp.New(cfg.tables, phase),
		log:      logger,
	}, nil
}

// Close releases the Encoder. DigiVoice holds no non-GC resources, so Close
// is a no-op kept for lifecycle symmetry with the original codec's
// create/destroy pair.
func (e *Encoder) Close() error {
	e.log.Debug("encoder closed")
	return nil
}

// Encode analyzes one 320-sample (40ms) PCM frame and writes the four
// 16-bit wire words into indices. The frame is analyzed as four 10ms
// harmonic models in sequence; only the last is quantized, matching the
// original codec's "only last model gets used going forward". Encode
// never fails: scalar quantizer inputs outside their table's range
// silently saturate to the nearest level (spec.md §7).
func (e *Encoder) Encode(indices *[4]uint16, pcm *[320]int16) {
	var last *model.Model
	for i := 0; i < subFramesPerPacket; i++ {
		sub := pcm[i*subFrameSamples : (i+1)*subFrameSamples]
		m, err := e.analyzer.Analyze(sub)
		if err != nil {
			// Unreachable: Analyze only errors on a wrong-length slice,
			// and sub is always exactly subFrameSamples long here.
			e.log.Debug("analyze failed", "err", err)
			continue
		}
		last = m
	}

	*indices = e.coder.EncodeFrame(last)
}
