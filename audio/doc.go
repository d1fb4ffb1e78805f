// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the augmenters are fed from.
//
// A Source yields interleaved float32 samples in [-1, 1]. Decoders in the
// formats subpackages produce Sources, and the stages here wrap them:
//
//	resampler, err := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//	samples, err := audio.ReadAll(mono, 4096)
//
// ReadMono does the three steps above in one call and is what the augmentation
// pipeline uses to turn a decoded file into a mono signal.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Open(filepath.Ext(path), file)
//
// # Error Handling
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly together with
// the last samples:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
