// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1 from overflowing
	return int16(x * 32767.0)
}

// Int16ToFloat32 scales a 16-bit PCM value into [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// FullScale returns the magnitude of the most negative value for the bit depth.
// Unknown depths fall back to 16 bits.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 converts integer PCM of the given bit depth into [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Float32sToInt16s converts a whole buffer, reusing dst when it is large enough.
func Float32sToInt16s(dst []int16, src []float32) []int16 {
	if cap(dst) < len(src) {
		dst = make([]int16, len(src))
	}
	dst = dst[:len(src)]

	for i, x := range src {
		dst[i] = Float32ToInt16(x)
	}

	return dst
}

// Float32sToInts scales samples to 32-bit PCM held in ints, the representation
// level meters expect.
func Float32sToInts(src []float32) []int {
	out := make([]int, len(src))
	for i, x := range src {
		if x > 1 {
			x = 1
		} else if x < -1 {
			x = -1
		}
		out[i] = int(float64(x) * 2147483647.0)
	}

	return out
}
