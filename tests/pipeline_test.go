package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/transduce/pkg/transduce"
	"github.com/ib-77/transduce/pkg/transduce/seqs"
)

// buildWordPipeline assembles the pipeline used by the end-to-end tests:
// trim each word, drop the empty ones, uppercase the rest and join them.
func buildWordPipeline(t *testing.T) *transduce.Chain {
	t.Helper()

	c, err := transduce.Map(strings.TrimSpace).Forward(transduce.Filter())
	assert.NoError(t, err)
	c, err = c.Forward(transduce.Map(strings.ToUpper))
	assert.NoError(t, err)
	c, err = c.Forward(transduce.Reduce(func(acc, w string) string {
		if acc == "" {
			return w
		}
		return acc + " " + w
	}))
	assert.NoError(t, err)
	return c
}

func TestWordPipelineEndToEnd(t *testing.T) {
	words := []string{" hello ", "", "   ", "pipeline", " world"}

	pipeline := buildWordPipeline(t)
	fmt.Println("pipeline:", pipeline)

	out, err := pipeline.Backward(words)
	assert.NoError(t, err)
	assert.Equal(t, "HELLO PIPELINE WORLD", out)

	// the chain is immutable: the same pipeline evaluates again
	out, err = pipeline.Backward([]string{"again"})
	assert.NoError(t, err)
	assert.Equal(t, "AGAIN", out)
}

func TestPipelineBuildVsEvaluateDispatch(t *testing.T) {
	exclaim := func(s string) string { return s + "!" }

	c := transduce.Map(strings.ToUpper)

	// callable operand on the left extends the pipeline
	extended, err := c.Backward(transduce.Call(exclaim))
	assert.NoError(t, err)
	ext, ok := extended.(*transduce.Chain)
	assert.True(t, ok)
	assert.Equal(t, 2, ext.Len())

	// non-callable operand on the left evaluates it
	evaluated, err := c.Backward([]string{"a", "b"})
	assert.NoError(t, err)
	s, ok := evaluated.(*seqs.Seq[any])
	assert.True(t, ok)

	vals, err := s.Collect()
	assert.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, vals)
}

func TestPipelineAssociativityEndToEnd(t *testing.T) {
	trim := transduce.Map(strings.TrimSpace)
	keep := transduce.Filter()
	count := transduce.Reduce(func(acc, _ any) any {
		return acc.(int) + 1
	}, 0)

	grouped1 := transduce.Combine(transduce.Combine(trim, keep), count)
	grouped2 := transduce.Combine(trim, transduce.Combine(keep, count))

	assert.Equal(t, grouped1.Labels(), grouped2.Labels())

	input := []string{"a", " ", "b", "", "c "}

	r1, err := grouped1.Backward(input)
	assert.NoError(t, err)
	r2, err := grouped2.Backward(input)
	assert.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, 3, r1)
}

func TestPipelineErrorLeavesChainReusable(t *testing.T) {
	parse := transduce.Map(func(s string) (int, error) {
		if s == "bad" {
			return 0, fmt.Errorf("bad token %q", s)
		}
		return len(s), nil
	})
	sum := transduce.Reduce(func(acc, v int) int { return acc + v }, 0)

	pipeline, err := parse.Forward(sum)
	assert.NoError(t, err)

	_, err = pipeline.Backward([]string{"aa", "bad", "b"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad token")

	out, err := pipeline.Backward([]string{"aa", "b"})
	assert.NoError(t, err)
	assert.Equal(t, 3, out)
}

func TestPipelineRepr(t *testing.T) {
	pipeline := buildWordPipeline(t)

	repr := pipeline.String()
	assert.True(t, strings.HasPrefix(repr, "input >> "))
	assert.Equal(t, 4, pipeline.Len())
	assert.Contains(t, repr, "Map(")
	assert.Contains(t, repr, "Filter(Truthy)")
}
