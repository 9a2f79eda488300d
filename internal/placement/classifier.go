// Package placement wraps the externally trained placement classifier and
// derives advisory suggestions from student profiles.
package placement

import (
	"fmt"

	"github.com/dmitryikh/leaves"

	"github.com/rishabhsssrrr13/ppss/internal/domain"
)

// Classifier predicts a binary placement label (1 = placed) from a
// fixed-length feature vector. The model itself is an opaque capability
// trained outside this repository.
type Classifier interface {
	Predict(features []float64) (int, error)
}

// GBTClassifier backs Classifier with a gradient-boosting ensemble loaded
// from a serialized model artifact.
type GBTClassifier struct {
	model *leaves.Ensemble
}

// LoadClassifier reads a trained LightGBM model file. The transformation
// baked into the artifact is applied, so predictions are probabilities.
func LoadClassifier(path string) (*GBTClassifier, error) {
	model, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("load placement model %s: %w", path, err)
	}
	return &GBTClassifier{model: model}, nil
}

// Predict returns 1 when the placement probability exceeds 0.5, else 0.
func (c *GBTClassifier) Predict(features []float64) (int, error) {
	if len(features) != domain.FeatureCount {
		return 0, fmt.Errorf("expected %d features, got %d", domain.FeatureCount, len(features))
	}

	p := c.model.PredictSingle(features, 0)
	if p > 0.5 {
		return 1, nil
	}
	return 0, nil
}
