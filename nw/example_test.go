package nw_test

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/nwalign/nw"
)

// ExampleAligner_Align fits a short OCR fragment onto a longer template.
// Missing positions are filled with '*'.
func ExampleAligner_Align() {
	al := nw.NewAligner[rune, rune]()
	out, err := al.Align([]rune("aabcd"), []rune("aaabbbccd"), nw.Equal[rune](1, -1), '*')
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(string(out))
	// Output:
	// *aa**b*cd
}

// ExampleAlign_mask aligns characters against a digit mask: the reference
// is a []bool, the source a []rune.
func ExampleAlign_mask() {
	mask := []bool{true, false, false, true, true, false}
	score := func(ch rune, digit bool) int {
		if unicode.IsDigit(ch) == digit {
			return 2
		}

		return -2
	}

	out, _ := nw.Align([]rune("aa12bcd"), mask, score, '*')
	fmt.Println(string(out))
	// Output:
	// *aa12d
}

// ExampleAligner_Score reports the optimal score only.
func ExampleAligner_Score() {
	al := nw.NewAligner[rune, rune](nw.WithGapPenalty(-3))
	s, _ := al.Score([]rune("aabcd"), []rune("aaabbbccd"), nw.Equal[rune](1, -1))
	fmt.Println(s)
	// Output:
	// -7
}
