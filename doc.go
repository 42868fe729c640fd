// Package digivoice implements a 700 bit/s sinusoidal speech codec.
//
// DigiVoice compresses 320-sample (40ms) frames of 8kHz, 16-bit PCM speech
// into four 16-bit index words (28 bits, 700 bit/s) and reconstructs PCM
// from those indices. Each 40ms frame is analyzed as four 10ms harmonic
// models; only the last of the four is quantized and transmitted, and the
// decoder linearly interpolates the envelope, pitch, and voicing of
// consecutive received frames back up to a 100Hz model rate before
// resynthesis.
//
// # Pipeline
//
// Encode: non-linear pitch estimation -> harmonic analysis -> rate-L to
// rate-K envelope resampling -> two-stage vector quantization -> scalar
// quantization of energy and pitch.
//
// Decode: envelope/pitch/voicing interpolation across four sub-frames ->
// rate-K to rate-L envelope resampling -> minimum-phase reconstruction ->
// zero-order-hold phase synthesis -> overlap-add resynthesis.
//
// # Resource model
//
// NewEncoder and NewDecoder allocate all FFT plans and VQ search scratch
// state up front; Encode and Decode reuse that state and never fail, though
// each call still allocates the harmonic model records for its four
// sub-frames. Each Encoder/Decoder is stateful across calls (it carries
// pitch-tracking and envelope history) and must not be shared across
// goroutines; independent handles may run concurrently.
package digivoice
