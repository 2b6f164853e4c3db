package rtk

// JLPTLevel is one of the five Japanese-Language Proficiency Test tiers
// optionally associated with a kanji. N5 is the easiest, N1 the hardest.
type JLPTLevel string

const (
	JLPTN5 JLPTLevel = "N5"
	JLPTN4 JLPTLevel = "N4"
	JLPTN3 JLPTLevel = "N3"
	JLPTN2 JLPTLevel = "N2"
	JLPTN1 JLPTLevel = "N1"
)

// Rank returns the difficulty rank for sorting: 1 (N5, easiest) through
// 5 (N1, hardest). Unknown or absent levels rank 0.
func (l JLPTLevel) Rank() int {
	switch l {
	case JLPTN5:
		return 1
	case JLPTN4:
		return 2
	case JLPTN3:
		return 3
	case JLPTN2:
		return 4
	case JLPTN1:
		return 5
	default:
		return 0
	}
}

// Known reports whether l is one of the five valid tiers.
func (l JLPTLevel) Known() bool {
	return l.Rank() != 0
}
