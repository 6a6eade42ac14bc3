package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundial/wellness/internal/types"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	s := healthyStub(types.DomainFitness, 50)
	require.NoError(t, r.Register(s))

	got, ok := r.Get(types.DomainFitness)
	require.True(t, ok)
	assert.Equal(t, s.Name(), got.Name())

	_, ok = r.Get(types.DomainSleep)
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicateDomain(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(healthyStub(types.DomainSleep, 50)))

	err := r.Register(healthyStub(types.DomainSleep, 60))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_RejectsInvalidDomain(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&stubScorer{name: "bogus", domain: types.Domain("astrology")})
	require.Error(t, err)
}

func TestRegistry_OrderedIsEvaluationOrder(t *testing.T) {
	r := NewRegistry()
	// Register out of order on purpose.
	require.NoError(t, r.Register(healthyStub(types.DomainMood, 50)))
	require.NoError(t, r.Register(healthyStub(types.DomainFitness, 50)))
	require.NoError(t, r.Register(healthyStub(types.DomainSleep, 50)))

	ordered := r.Ordered()
	require.Len(t, ordered, 3)
	assert.Equal(t, types.DomainFitness, ordered[0].Domain())
	assert.Equal(t, types.DomainSleep, ordered[1].Domain())
	assert.Equal(t, types.DomainMood, ordered[2].Domain())
}
