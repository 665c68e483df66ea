package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SREEDEEP-DEY/SpendSight/internal/heuristics"
	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

func newTestClassifier() *Classifier {
	return New(NewHashingEmbedder(256), nil, heuristics.Classify)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"neft separator", "NEFT-AXIS0042", "NEFT AXIS0042"},
		{"visa pos", "VISA-POS DMART", "VISA POS DMART"},
		{"long numeric stripped", "UPI 9204417812345 PAY", "UPI PAY"},
		{"long ref stripped", "PAY AB12CD34EF56 DONE", "PAY DONE"},
		{"underscores", "SMS_CHARGE_MAR", "SMS CHARGE MAR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestHashingEmbedderDeterministic(t *testing.T) {
	e := NewHashingEmbedder(128)

	a, err := e.Embed([]string{"zomato food order"})
	require.NoError(t, err)
	b, err := e.Embed([]string{"zomato food order"})
	require.NoError(t, err)

	assert.Equal(t, a[0], b[0])
	assert.Len(t, a[0], 128)

	// unit length
	s := 0.0
	for _, v := range a[0] {
		s += v * v
	}
	assert.InDelta(t, 1.0, s, 1e-9)
}

func TestHashingEmbedderSimilarTextsScoreHigher(t *testing.T) {
	e := NewHashingEmbedder(256)
	vecs, err := e.Embed([]string{
		"zomato food order",
		"zomato order food delivery",
		"quarterly average balance charge",
	})
	require.NoError(t, err)

	close := dot(vecs[0], vecs[1])
	far := dot(vecs[0], vecs[2])
	assert.Greater(t, close, far)
}

func TestClassifyEmptyIsPending(t *testing.T) {
	c := newTestClassifier()
	res := c.Classify("  ")
	assert.Equal(t, model.Pending, res.Category)
	assert.Zero(t, res.Confidence)
}

func TestClassifyRuleOverrides(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		desc        string
		category    string
		subcategory string
		confidence  float64
	}{
		{"SALARY CREDIT MAR", "Income", "Salary", 0.99},
		{"EMI 0042 HDFC", "Debt", "LoanEMI", 0.96},
		{"ATM WDR PUNE", "Cash", "ATMWithdrawal", 0.88},
		{"INT.PD HALF YEARLY", "Income", "Interest", 0.93},
		{"NEFT AXIS SETTLEMENT", "Transfers", "BankTransfer", 0.88},
		{"HPCL PUMP KOTHRUD", "Transport", "Fuel", 0.88},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := c.Classify(tt.desc)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.subcategory, res.Subcategory)
			assert.InDelta(t, tt.confidence, res.Confidence, 0.001)
			assert.Equal(t, "rule_override", res.Meta["source"])
		})
	}
}

func TestClassifyExactPrototypeText(t *testing.T) {
	c := newTestClassifier()

	// A narration identical to a taxonomy phrase has cosine 1.0 against its
	// own prototype, so it must resolve to that label with full confidence.
	res := c.Classify("zomato food order")

	require.True(t, res.Resolved())
	assert.Equal(t, "Dining", res.Category)
	assert.Equal(t, "FoodDelivery", res.Subcategory)
	assert.InDelta(t, 1.0, res.Confidence, 0.01)
}

func TestClassifyNeverErrors(t *testing.T) {
	c := newTestClassifier()

	for _, desc := range []string{"", "   ", "###", "a", "\x00\x01", "zzzz qqqq xxxx"} {
		res := c.Classify(desc)
		if res.Category == model.Pending {
			assert.GreaterOrEqual(t, res.Confidence, 0.0)
		} else {
			assert.NotEmpty(t, res.Category)
		}
	}
}
