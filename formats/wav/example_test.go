// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/formats/wav"
)

func ExampleWriteWAV16() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	samples := []int16{0, 8192, 16384, 8192, 0, -8192, -16384, -8192}
	if err := wav.WriteWAV16(f, 8000, 1, samples); err != nil {
		fmt.Println(err)
		return
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		fmt.Println(err)
		return
	}

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println(err)
		return
	}

	decoded, err := audio.ReadAll(src, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channel(s)\n", src.SampleRate(), src.Channels())
	fmt.Println(decoded)

	// Output:
	// 8000 Hz, 1 channel(s)
	// [0 0.25 0.5 0.25 0 -0.25 -0.5 -0.25]
}
