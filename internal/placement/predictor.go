package placement

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

// Predictor runs the classifier over a validated student profile, derives
// improvement suggestions, and records each prediction.
type Predictor struct {
	clf      Classifier
	log      *ResultLog
	validate *validator.Validate
	now      func() time.Time
}

// NewPredictor creates a Predictor writing results to log.
func NewPredictor(clf Classifier, log *ResultLog) *Predictor {
	return &Predictor{
		clf:      clf,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Predict validates profile, classifies it, and appends the outcome to the
// result log. Validation failures are reported before anything is logged;
// callers can unwrap validator.ValidationErrors to distinguish them from
// classifier or storage failures.
func (p *Predictor) Predict(profile *domain.StudentProfile) (*domain.PlacementResult, error) {
	if err := p.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("invalid student profile: %w", err)
	}

	label, err := p.clf.Predict(profile.FeatureVector())
	if err != nil {
		return nil, fmt.Errorf("classify profile: %w", err)
	}

	result := &domain.PlacementResult{
		Label:       "No",
		Suggestions: Suggestions(profile),
	}
	if label == 1 {
		result.Label = "Yes"
	}

	if err := p.log.Append(profile.Name, result.Label, p.now(), result.Suggestions); err != nil {
		return nil, fmt.Errorf("record prediction: %w", err)
	}

	return result, nil
}

// Suggestions derives advisory improvement hints from simple threshold
// rules. Rules are evaluated in fixed order and are not mutually exclusive;
// every applicable hint is included. The classifier output plays no part.
func Suggestions(profile *domain.StudentProfile) []string {
	var s []string
	if profile.CGPA < 7 {
		s = append(s, "Improve CGPA")
	}
	if profile.Internship == 0 {
		s = append(s, "Get internship experience")
	}
	if profile.Communication < 6 {
		s = append(s, "Work on communication")
	}
	if profile.Technical < 6 {
		s = append(s, "Improve technical skills")
	}
	return s
}
