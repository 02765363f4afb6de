package service

import "kycsim/internal/kyc/models"

// Attempt is one verification attempt fed into Summarize.
type Attempt struct {
	Method   string
	Verified bool
}

// Summarize condenses a set of verification attempts into the summary the
// demo dashboard displays: method count, completed methods, and a score
// equal to the percentage of successful attempts.
func Summarize(attempts []Attempt) models.Summary {
	summary := models.Summary{
		MethodsUsed: len(attempts),
		AllVerified: true,
	}
	if len(attempts) == 0 {
		summary.AllVerified = false
		return summary
	}

	for _, a := range attempts {
		if a.Verified {
			summary.MethodsCompleted = append(summary.MethodsCompleted, a.Method)
		} else {
			summary.AllVerified = false
		}
	}
	summary.Score = float64(len(summary.MethodsCompleted)) / float64(len(attempts)) * 100
	return summary
}
