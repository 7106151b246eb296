package classifier

import (
	"strings"

	"go.uber.org/zap"

	"github.com/xaenox/chat-triage/internal/models"
)

// Bucket labels are part of the external contract and must match exactly
const (
	LabelQuestions   = "Questions"
	LabelIssues      = "Issues/Bugs"
	LabelRequests    = "Requests"
	LabelGeneralChat = "General Chat"
)

// DefaultSampleLimit is the number of sample messages kept per bucket
const DefaultSampleLimit = 3

type Classifier interface {
	Classify(messages []models.Message) models.ClassificationResult
}

type rule struct {
	label string
	match func(text string) bool
}

type KeywordClassifier struct {
	rules       []rule
	sampleLimit int
	logger      *zap.Logger
}

func NewKeywordClassifier(sampleLimit int, logger *zap.Logger) *KeywordClassifier {
	if sampleLimit <= 0 {
		sampleLimit = DefaultSampleLimit
	}
	return &KeywordClassifier{
		// Rule order is the category priority order: a message goes to the
		// first rule that matches its lower-cased text. Question keywords
		// keep the trailing space so "showtime" does not match "how".
		rules: []rule{
			{LabelQuestions, containsAny("?", "how ", "what ", "why ")},
			{LabelIssues, containsAny("bug", "error", "broken", "issue")},
			{LabelRequests, containsAny("please", "can you", "could you", "would you")},
			{LabelGeneralChat, func(string) bool { return true }},
		},
		sampleLimit: sampleLimit,
		logger:      logger,
	}
}

func containsAny(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				return true
			}
		}
		return false
	}
}

// Classify assigns every message to exactly one category in a single pass
// and reports the non-empty categories as buckets in priority order.
// General Chat catches everything the keyword rules miss, so the bucket
// counts always sum to the number of processed messages.
func (c *KeywordClassifier) Classify(messages []models.Message) models.ClassificationResult {
	matched := make([][]string, len(c.rules))

	for _, msg := range messages {
		text := strings.ToLower(msg.Text)
		for i, r := range c.rules {
			if r.match(text) {
				matched[i] = append(matched[i], msg.Text)
				break
			}
		}
	}

	buckets := make([]models.Bucket, 0, len(c.rules))
	for i, r := range c.rules {
		if len(matched[i]) == 0 {
			continue
		}
		samples := matched[i]
		if len(samples) > c.sampleLimit {
			samples = samples[:c.sampleLimit]
		}
		buckets = append(buckets, models.Bucket{
			Label:          r.label,
			Count:          len(matched[i]),
			SampleMessages: samples,
		})
	}

	result := models.ClassificationResult{
		Buckets:        buckets,
		ProcessedCount: len(messages),
	}

	if c.logger != nil {
		c.logger.Debug("Classified message batch",
			zap.Int("processed_count", result.ProcessedCount),
			zap.Int("buckets", len(result.Buckets)))
	}

	return result
}
