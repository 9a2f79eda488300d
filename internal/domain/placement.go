package domain

// FeatureCount is the fixed length of the classifier input vector.
const FeatureCount = 7

// StudentProfile is the fixed-schema placement form submission.
type StudentProfile struct {
	Name            string  `validate:"required"`
	CGPA            float64 `validate:"gte=0,lte=10"`
	Internship      int     `validate:"oneof=0 1"`
	Communication   int     `validate:"gte=0,lte=10"`
	Technical       int     `validate:"gte=0,lte=10"`
	Certifications  int     `validate:"gte=0"`
	Projects        int     `validate:"gte=0"`
	ExtraActivities int     `validate:"gte=0"`
}

// FeatureVector returns the classifier input in the order the model was
// trained with: [CGPA, Internship, Communication, Technical, Certifications,
// Projects, ExtraActivities].
func (p *StudentProfile) FeatureVector() []float64 {
	return []float64{
		p.CGPA,
		float64(p.Internship),
		float64(p.Communication),
		float64(p.Technical),
		float64(p.Certifications),
		float64(p.Projects),
		float64(p.ExtraActivities),
	}
}

// PlacementResult is the outcome of a placement prediction.
type PlacementResult struct {
	Label       string   `json:"label"` // "Yes" or "No"
	Suggestions []string `json:"suggestions"`
}
