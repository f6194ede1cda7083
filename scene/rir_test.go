package scene

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRIRToMultichannel(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for _, numMics := range []int{2, 4} {
		for _, numSources := range []int{1, 3} {
			t.Run(fmt.Sprintf("mics_%d_sources_%d", numMics, numSources), func(t *testing.T) {
				// Golden reference with per-cell lengths in [50, 1000).
				rir := make([][][]float64, numMics)
				for m := range rir {
					rir[m] = make([][]float64, numSources)
					for s := range rir[m] {
						length := 50 + random.Intn(950)
						signal := make([]float64, length)
						for i := range signal {
							signal[i] = random.Float64()
						}
						rir[m][s] = signal
					}
				}

				mc, err := ConvertRIRToMultichannel(rir)
				require.NoError(t, err)
				require.Len(t, mc, numSources)

				for s := 0; s < numSources; s++ {
					maxLen := 0
					for m := 0; m < numMics; m++ {
						if l := len(rir[m][s]); l > maxLen {
							maxLen = l
						}
					}
					rows, cols := mc[s].Dims()
					assert.Equal(t, maxLen, rows)
					assert.Equal(t, numMics, cols)

					for m := 0; m < numMics; m++ {
						for i, want := range rir[m][s] {
							if got := mc[s].At(i, m); got != want {
								t.Fatalf("source=%d channel=%d sample %d: got %v, want %v", s, m, i, got, want)
							}
						}
						for i := len(rir[m][s]); i < rows; i++ {
							if got := mc[s].At(i, m); got != 0.0 {
								t.Fatalf("source=%d channel=%d: padding at %d is %v, want 0", s, m, i, got)
							}
						}
					}
				}
			})
		}
	}
}

func TestConvertRIRToMultichannelInvalid(t *testing.T) {
	assert := assert.New(t)

	// Mismatched source counts across microphones.
	_, err := ConvertRIRToMultichannel([][][]float64{
		{{1, 2}, {3}},
		{{1, 2}},
	})
	var verr ValidationError
	assert.ErrorAs(err, &verr)

	// A source with no samples on any microphone.
	_, err = ConvertRIRToMultichannel([][][]float64{
		{{}},
		{{}},
	})
	assert.ErrorAs(err, &verr)

	mc, err := ConvertRIRToMultichannel(nil)
	assert.NoError(err)
	assert.Empty(mc)
}
