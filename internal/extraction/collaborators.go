package extraction

import (
	"context"
	"fmt"
	"sync"
)

// Entity is one span found by the NLP collaborator.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

// EntityExtractor is the external NLP collaborator.
type EntityExtractor interface {
	Extract(ctx context.Context, text, language string) ([]Entity, error)
}

// ModelPrediction is the typed output of a field model.
type ModelPrediction struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// FieldModel is one external ML model predicting a single field's value from
// document text.
type FieldModel interface {
	Predict(ctx context.Context, fieldName, text string) (ModelPrediction, error)
}

// DefaultModelKey is consulted when no model is registered under a field name.
const DefaultModelKey = "default"

// ModelRegistry resolves field models by field name with a "default"
// fallback. Unknown keys resolve to an explicit error, never a nil model.
type ModelRegistry struct {
	mu     sync.RWMutex
	models map[string]FieldModel
}

func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{models: map[string]FieldModel{}}
}

func (r *ModelRegistry) Register(key string, m FieldModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[key] = m
}

func (r *ModelRegistry) Resolve(fieldName string) (FieldModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.models[fieldName]; ok {
		return m, nil
	}
	if m, ok := r.models[DefaultModelKey]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("no model registered for field %q and no %q fallback", fieldName, DefaultModelKey)
}
