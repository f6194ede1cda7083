package scene

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ConvertRIRToMultichannel aligns a per-microphone, per-source collection of
// variable-length room impulse responses into one multichannel matrix per
// source.
//
// Input is indexed rir[mic][source]. Output element s has one row per sample
// and one column per microphone; column m holds rir[m][s] starting at row 0,
// zero-padded up to the longest response for that source. Sample values are
// never modified.
func ConvertRIRToMultichannel(rir [][][]float64) ([]*mat.Dense, error) {
	numMics := len(rir)
	if numMics == 0 {
		return []*mat.Dense{}, nil
	}

	numSources := len(rir[0])
	for m := range rir {
		if len(rir[m]) != numSources {
			return nil, ValidationError{
				Field:   "rir",
				Message: fmt.Sprintf("microphone %d lists %d sources, expected %d", m, len(rir[m]), numSources),
			}
		}
	}

	multichannel := make([]*mat.Dense, numSources)
	for s := 0; s < numSources; s++ {
		maxLen := 0
		for m := 0; m < numMics; m++ {
			if l := len(rir[m][s]); l > maxLen {
				maxLen = l
			}
		}
		if maxLen == 0 {
			return nil, ValidationError{
				Field:   "rir",
				Message: fmt.Sprintf("source %d has no samples on any microphone", s),
			}
		}

		mc := mat.NewDense(maxLen, numMics, nil)
		for m := 0; m < numMics; m++ {
			for i, v := range rir[m][s] {
				mc.Set(i, m, v)
			}
		}
		multichannel[s] = mc
	}
	return multichannel, nil
}
