package crypto

// MaxStrengthScore is the highest score Strength can assign.
const MaxStrengthScore = 7

// StrengthReport describes how strong a password looks.
type StrengthReport struct {
	Score   int
	Label   string
	Percent int
}

// Strength scores a password: one point each for reaching 12, 16 and 20
// characters, and one point each for containing an uppercase letter, a
// lowercase letter, a digit and a non-alphanumeric character.
func Strength(password string) StrengthReport {
	score := 0

	n := len([]rune(password))
	for _, threshold := range []int{12, 16, 20} {
		if n >= threshold {
			score++
		}
	}

	var hasUpper, hasLower, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasOther} {
		if ok {
			score++
		}
	}

	return StrengthReport{
		Score:   score,
		Label:   strengthLabel(score),
		Percent: score * 100 / MaxStrengthScore,
	}
}

func strengthLabel(score int) string {
	switch {
	case score <= 3:
		return "Weak"
	case score <= 5:
		return "Fair"
	case score < MaxStrengthScore:
		return "Good"
	default:
		return "Strong"
	}
}
